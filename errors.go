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

package chess

import (
	"errors"
	"fmt"
)

// ErrUnexpectedToken is the sentinel wrapped by square- and field-level
// grammar failures that do not carry enough structure to deserve their own
// type. Callers that want the specific offending prefix should prefer
// errors.As against the pgn package's ParseError, not this sentinel; it
// exists so chess-package-local token helpers can participate in the same
// %w chain.
var ErrUnexpectedToken = errors.New("unexpected token")

// InvalidSquare reports a square coordinate pair outside [0,7]x[0,7].
type InvalidSquare struct {
	Row, Col int
}

func (e InvalidSquare) Error() string {
	return fmt.Sprintf("invalid square: row=%d col=%d must each be in [0,7]", e.Row, e.Col)
}

// InvalidField reports a malformed FEN field: a bad piece letter, a bad
// castle-right letter, a clock that doesn't parse as an integer, and so on.
type InvalidField struct {
	FieldName string
	Value     string
	Reason    string
}

func (e InvalidField) Error() string {
	return fmt.Sprintf("invalid FEN field %s=%q: %s", e.FieldName, e.Value, e.Reason)
}

// EngineError is the marker interface satisfied by every error returned by
// [Replay] and the move-resolution machinery it drives. Callers use
// errors.As to recover the concrete kind.
type EngineError interface {
	error
	engineError()
}

// IllegalCastle reports a castle ply whose corresponding right is no longer
// available on the board.
type IllegalCastle struct {
	Colour Colour
	Side   CastleSide
}

func (e IllegalCastle) Error() string {
	return fmt.Sprintf("illegal castle: %s %s castle right not available", e.Colour, e.Side)
}
func (IllegalCastle) engineError() {}

// NoKing reports that the board holds no king for the colour to move, so
// legality cannot be evaluated.
type NoKing struct {
	Colour Colour
}

func (e NoKing) Error() string {
	return fmt.Sprintf("no %s king on the board", e.Colour)
}
func (NoKing) engineError() {}

// NoCandidate reports that no piece of the specified colour and kind can
// legally reach the target square.
type NoCandidate struct {
	Piece  Piece
	Target Square
}

func (e NoCandidate) Error() string {
	return fmt.Sprintf("no %s can reach %s", e.Piece, e.Target)
}
func (NoCandidate) engineError() {}

// AmbiguousPly reports that more than one origin square is a viable
// candidate and the parsed disambiguator (if any) failed to narrow the set
// to exactly one.
type AmbiguousPly struct {
	Piece      Piece
	Target     Square
	Candidates []Square
}

func (e AmbiguousPly) Error() string {
	return fmt.Sprintf("ambiguous ply: %d candidates for %s reaching %s: %v", len(e.Candidates), e.Piece, e.Target, e.Candidates)
}
func (AmbiguousPly) engineError() {}
