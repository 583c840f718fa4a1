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

// Colour is one of exactly two variants: White or Black. There is no
// "unset" zero value — every Colour on this package's exported surface is
// one of the two sides to move, so the zero value (White) is always
// meaningful on its own.
type Colour uint8

const (
	White Colour = iota
	Black
)

func (c Colour) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Opponent returns the other colour.
func (c Colour) Opponent() Colour {
	if c == White {
		return Black
	}
	return White
}

func parseColourToken(s string) (Colour, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, InvalidField{FieldName: "side to move", Value: s, Reason: `must be "w" or "b"`}
	}
}
