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

import "strings"

// PieceKind is one of exactly six variants.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

func parseFENPieceLetter(r rune) (Piece, error) {
	var colour Colour
	if r >= 'a' && r <= 'z' {
		colour = Black
	} else {
		colour = White
	}
	var kind PieceKind
	switch r {
	case 'p', 'P':
		kind = Pawn
	case 'n', 'N':
		kind = Knight
	case 'b', 'B':
		kind = Bishop
	case 'r', 'R':
		kind = Rook
	case 'q', 'Q':
		kind = Queen
	case 'k', 'K':
		kind = King
	default:
		return Piece{}, InvalidField{FieldName: "board", Value: string(r), Reason: "not a valid piece letter"}
	}
	return Piece{Colour: colour, Kind: kind}, nil
}

// Piece is a (Colour, PieceKind) value object.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// String renders the piece as a single FEN-style letter: uppercase for
// White, lowercase for Black.
func (p Piece) String() string {
	if p.Colour == White {
		return strings.ToUpper(p.Kind.String())
	}
	return p.Kind.String()
}
