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

// Replay threads start through plies in order, returning the ordered board
// history: length len(plies)+1, element 0 is a clone of start, element i+1
// is the board after applying plies[i]. On the first failure it returns
// immediately; no partial history is returned.
func Replay(start *Board, plies []Ply) ([]*Board, error) {
	history := make([]*Board, 0, len(plies)+1)
	history = append(history, start.Clone())

	current := start
	for _, ply := range plies {
		next, err := applyPly(current, ply)
		if err != nil {
			return nil, err
		}
		history = append(history, next)
		current = next
	}
	return history, nil
}
