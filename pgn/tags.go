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

// parseTagSection consumes zero or more tag pairs from the start of s. A
// game with no tags at all (a bare move-text section) is admitted; tags
// simply accumulate into an empty set.
func parseTagSection(s *scanner) (*chess.Tags, error) {
	tags := chess.NewTags()
	for {
		s.skipWhitespace()
		if !s.hasPrefix("[") {
			return tags, nil
		}
		name, value, err := scanTagPair(s)
		if err != nil {
			return nil, err
		}
		tags.Set(name, value)
	}
}
