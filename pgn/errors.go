// Copyright (C) 2025 Brigham Skarda

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pgn implements the recursive-descent parser for PGN move
// collections: tokenisers, the FEN-aware tag section, the move-text
// grammar, and the single-game and multi-game stream parsers.
package pgn

import "fmt"

// ParseError is the marker interface satisfied by every error the parser
// in this package returns. Callers use errors.As to recover the concrete
// kind.
type ParseError interface {
	error
	isParseError()
}

// UnexpectedToken reports that a grammar rule failed to match at context,
// with offendingPrefix showing the input the parser was looking at.
type UnexpectedToken struct {
	Context         string
	OffendingPrefix string
}

func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token while parsing %s: %q", e.Context, e.OffendingPrefix)
}
func (UnexpectedToken) isParseError() {}

// TrailingInput reports that a grammar rule matched a prefix successfully
// but unconsumed text remains where none was expected.
type TrailingInput struct {
	OffendingPrefix string
}

func (e TrailingInput) Error() string {
	return fmt.Sprintf("trailing input: %q", e.OffendingPrefix)
}
func (TrailingInput) isParseError() {}

// InvalidSquare reports a square coordinate pair outside [0,7]x[0,7]
// encountered while parsing PGN text (as opposed to while building a board
// directly through the chess package API).
type InvalidSquare struct {
	Row, Col int
}

func (e InvalidSquare) Error() string {
	return fmt.Sprintf("invalid square: row=%d col=%d", e.Row, e.Col)
}
func (InvalidSquare) isParseError() {}

// InvalidField reports a malformed field value, most commonly from the
// embedded FEN starting position.
type InvalidField struct {
	FieldName string
	Value     string
}

func (e InvalidField) Error() string {
	return fmt.Sprintf("invalid field %s=%q", e.FieldName, e.Value)
}
func (InvalidField) isParseError() {}

// MissingTag reports that a required tag (namely Result) was absent from
// the tag section.
type MissingTag struct {
	Name string
}

func (e MissingTag) Error() string {
	return fmt.Sprintf("missing required tag %q", e.Name)
}
func (MissingTag) isParseError() {}

// StreamError decorates a game-level ParseError with its position in a
// multi-game stream: which 0-based game index failed, and the byte offset
// into the stream where that game's text began. This lets a caller
// processing a large multi-game file report or skip exactly the
// offending game.
type StreamError struct {
	GameIndex int
	Offset    int
	Err       error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("game %d (byte offset %d): %s", e.GameIndex, e.Offset, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
