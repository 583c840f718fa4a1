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

// legal runs the pin test for a candidate origin: clone the board, perform
// a bare move (origin cleared, destination overwritten), then check
// whether any enemy bishop/rook/queen's geometry now reaches the moving
// side's king. King moves are unconditionally legal at this layer: a
// king move that walked into check would never have been the game's
// recorded SAN target in the first place, so this filter exists only to
// disambiguate non-king candidates sharing a target square.
func legal(board *Board, piece Piece, origin, target, kingSquare Square) bool {
	if piece.Kind == King {
		return true
	}

	clone := board.Clone()
	clone.Remove(origin)
	clone.Put(piece, target)

	enemy := piece.Colour.Opponent()
	for _, kind := range []PieceKind{Bishop, Rook, Queen} {
		for _, sq := range clone.FindAll(Piece{Colour: enemy, Kind: kind}) {
			if destinations(clone, Piece{Colour: enemy, Kind: kind}, sq)[kingSquare] {
				return false
			}
		}
	}
	return true
}
