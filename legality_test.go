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

import "testing"

func TestLegalKingMoveAlwaysAllowed(t *testing.T) {
	b := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).
		Piece(Piece{Colour: Black, Kind: Rook}, MustSquare(7, 4)).
		Build()
	if !legal(b, Piece{Colour: White, Kind: King}, MustSquare(0, 4), MustSquare(0, 3), MustSquare(0, 4)) {
		t.Error("legal() rejected a king move; king moves must always pass this layer")
	}
}

func TestLegalRejectsPinnedPieceMove(t *testing.T) {
	// White king e1, White knight e2, Black rook e8: the knight is pinned
	// along the e-file and moving it off-file would expose the king.
	b := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).
		Piece(Piece{Colour: White, Kind: Knight}, MustSquare(1, 4)).
		Piece(Piece{Colour: Black, Kind: Rook}, MustSquare(7, 4)).
		Build()
	king := MustSquare(0, 4)
	if legal(b, Piece{Colour: White, Kind: Knight}, MustSquare(1, 4), MustSquare(3, 3), king) {
		t.Error("legal() allowed a pinned knight to move off the file/rank guarding its king")
	}
}

func TestLegalAllowsUnpinnedPieceMove(t *testing.T) {
	b := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).
		Piece(Piece{Colour: White, Kind: Knight}, MustSquare(2, 2)).
		Piece(Piece{Colour: White, Kind: Pawn}, MustSquare(1, 4)). // e2 blocks the e-file
		Piece(Piece{Colour: Black, Kind: Rook}, MustSquare(7, 4)).
		Build()
	king := MustSquare(0, 4)
	if !legal(b, Piece{Colour: White, Kind: Knight}, MustSquare(2, 2), MustSquare(4, 3), king) {
		t.Error("legal() rejected an unpinned knight's move")
	}
}
