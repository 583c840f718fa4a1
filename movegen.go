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

// metric is a single (dRow, dCol) displacement vector.
type metric struct {
	dRow, dCol int
}

var knightMetrics = []metric{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingMetrics = []metric{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var diagonalMetrics = []metric{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalMetrics = []metric{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// destinations enumerates the squares a piece at from may reach by movement
// rules alone — it ignores king safety entirely. Total and pure: always
// returns (never errors), never mutates board.
func destinations(board *Board, piece Piece, from Square) map[Square]bool {
	switch piece.Kind {
	case Pawn:
		return pawnDestinations(board, piece.Colour, from)
	case Knight:
		return steppingDestinations(board, piece.Colour, from, knightMetrics)
	case King:
		return steppingDestinations(board, piece.Colour, from, kingMetrics)
	case Bishop:
		return slidingDestinations(board, piece.Colour, from, diagonalMetrics)
	case Rook:
		return slidingDestinations(board, piece.Colour, from, orthogonalMetrics)
	case Queen:
		dests := slidingDestinations(board, piece.Colour, from, diagonalMetrics)
		for sq := range slidingDestinations(board, piece.Colour, from, orthogonalMetrics) {
			dests[sq] = true
		}
		return dests
	default:
		return map[Square]bool{}
	}
}

func pawnDestinations(board *Board, colour Colour, from Square) map[Square]bool {
	dests := make(map[Square]bool)

	forward := 1
	startRow := 1
	if colour == Black {
		forward = -1
		startRow = 6
	}

	if push, err := NewSquare(from.Row+forward, from.Col); err == nil {
		if _, occ := board.Occupant(push); !occ {
			dests[push] = true
			if from.Row == startRow {
				if dbl, err2 := NewSquare(from.Row+2*forward, from.Col); err2 == nil {
					if _, occ2 := board.Occupant(dbl); !occ2 {
						dests[dbl] = true
					}
				}
			}
		}
	}

	enPassant, hasEnPassant := board.EnPassant()
	for _, dCol := range []int{-1, 1} {
		target, err := NewSquare(from.Row+forward, from.Col+dCol)
		if err != nil {
			continue
		}
		if occ, ok := board.Occupant(target); ok && occ.Colour != colour {
			dests[target] = true
		} else if hasEnPassant && target == enPassant {
			dests[target] = true
		}
	}

	return dests
}

func steppingDestinations(board *Board, colour Colour, from Square, metrics []metric) map[Square]bool {
	dests := make(map[Square]bool)
	for _, m := range metrics {
		target, err := NewSquare(from.Row+m.dRow, from.Col+m.dCol)
		if err != nil {
			continue
		}
		if occ, ok := board.Occupant(target); ok && occ.Colour == colour {
			continue
		}
		dests[target] = true
	}
	return dests
}

func slidingDestinations(board *Board, colour Colour, from Square, metrics []metric) map[Square]bool {
	dests := make(map[Square]bool)
	for _, m := range metrics {
		row, col := from.Row, from.Col
		for {
			row += m.dRow
			col += m.dCol
			target, err := NewSquare(row, col)
			if err != nil {
				break
			}
			occ, ok := board.Occupant(target)
			if !ok {
				dests[target] = true
				continue
			}
			if occ.Colour != colour {
				dests[target] = true
			}
			break
		}
	}
	return dests
}
