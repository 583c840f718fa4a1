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

// ParseStream repeatedly applies the single-game grammar until input is
// exhausted, yielding every game in source order. On a malformed game it
// halts immediately with a *StreamError naming the 0-based index of the
// offending game and the byte offset into the stream where that game's
// text began — games parsed before the failure are discarded; the caller
// gets the first error, not a partial result set.
func ParseStream(input string) ([]*chess.Pgn, error) {
	s := newScanner(input)
	var games []*chess.Pgn

	for gameIndex := 0; ; gameIndex++ {
		s.skipWhitespace()
		if s.eof() {
			return games, nil
		}

		offset := s.pos
		pgn, err := ParsePgn(s)
		if err != nil {
			return nil, &StreamError{GameIndex: gameIndex, Offset: offset, Err: err}
		}
		games = append(games, pgn)
	}
}
