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

package pgn

import chess "github.com/sarsapar1lla/pigin-go"

// ParsePgn parses a single game: a tag section followed by a move-text
// section. The FEN tag selects the starting position (absent means the
// standard initial position); the Result tag is required, and the
// terminating result token from the move text — not the tag — is the one
// carried onto the returned [chess.Pgn], since the two are redundant by
// construction and only the token is guaranteed to match what was
// actually replayed.
func ParsePgn(s *scanner) (*chess.Pgn, error) {
	tags, err := parseTagSection(s)
	if err != nil {
		return nil, err
	}

	if _, ok := tags.Get("Result"); !ok {
		return nil, MissingTag{Name: "Result"}
	}

	fen := chess.DefaultFEN
	if tagged, ok := tags.Get("FEN"); ok {
		fen = tagged
	}
	startingBoard, err := chess.ParseFEN(fen)
	if err != nil {
		return nil, InvalidField{FieldName: "FEN", Value: fen}
	}

	s.skipWhitespace()
	plies, result, err := parseMoveText(s)
	if err != nil {
		return nil, err
	}

	return &chess.Pgn{
		Tags:          tags,
		StartingBoard: startingBoard,
		Result:        result,
		Plies:         plies,
	}, nil
}

// Parse parses a single game from a full PGN string, rejecting any
// unconsumed trailing input beyond whitespace.
func Parse(input string) (*chess.Pgn, error) {
	s := newScanner(input)
	pgn, err := ParsePgn(s)
	if err != nil {
		return nil, err
	}
	s.skipWhitespace()
	if !s.eof() {
		return nil, TrailingInput{OffendingPrefix: s.prefix(24)}
	}
	return pgn, nil
}
