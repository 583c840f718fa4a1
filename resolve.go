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

// applyPly resolves ply against board and returns the resulting board.
// board is never mutated; a clone is produced and mutated instead, so the
// caller's board remains valid for a replay trace.
func applyPly(board *Board, ply Ply) (*Board, error) {
	switch ply.Kind {
	case PlyKingsideCastle:
		return applyCastle(board, ply.Colour, Kingside)
	case PlyQueensideCastle:
		return applyCastle(board, ply.Colour, Queenside)
	default:
		return applyMove(board, ply)
	}
}

func applyCastle(board *Board, colour Colour, side CastleSide) (*Board, error) {
	right := CastleRight{Colour: colour, Side: side}
	if !board.HasCastleRight(right) {
		return nil, IllegalCastle{Colour: colour, Side: side}
	}

	next := board.Clone()
	king := Piece{Colour: colour, Kind: King}
	rook := Piece{Colour: colour, Kind: Rook}

	next.Remove(kingHome(colour))
	next.Remove(rookHome(colour, side))
	next.Put(king, kingCastledSquare(colour, side))
	next.Put(rook, rookCastledSquare(colour, side))

	if colour == White {
		next.DropCastleRight(WhiteKingside)
		next.DropCastleRight(WhiteQueenside)
	} else {
		next.DropCastleRight(BlackKingside)
		next.DropCastleRight(BlackQueenside)
	}

	next.ClearEnPassant()
	advanceClocksAfterCastle(next, colour)
	next.SetSideToMove(colour.Opponent())
	return next, nil
}

func advanceClocksAfterCastle(b *Board, colour Colour) {
	b.SetHalfmoveClock(b.HalfmoveClock() + 1)
	if colour == Black {
		b.SetFullmoveClock(b.FullmoveClock() + 1)
	}
}

func applyMove(board *Board, ply Ply) (*Board, error) {
	piece := Piece{Colour: ply.Colour, Kind: ply.Piece}

	kingSquare, err := board.kingSquare(ply.Colour)
	if err != nil {
		return nil, err
	}

	origin, err := resolveOrigin(board, piece, ply.Target, ply.Disambiguator, kingSquare)
	if err != nil {
		return nil, err
	}

	next := board.Clone()

	_, wasOccupied := next.Occupant(ply.Target)
	capture := wasOccupied

	next.Remove(origin)

	enPassant, hasEnPassant := next.EnPassant()
	if hasEnPassant && piece.Kind == Pawn && ply.Target == enPassant {
		capturedRow := ply.Target.Row - 1
		if ply.Colour == Black {
			capturedRow = ply.Target.Row + 1
		}
		next.Remove(Square{Row: capturedRow, Col: ply.Target.Col})
		capture = true
	}
	next.ClearEnPassant()

	if ply.Kind == PlyPromotion {
		next.Put(Piece{Colour: ply.Colour, Kind: ply.PromotesTo}, ply.Target)
	} else {
		next.Put(piece, ply.Target)
	}

	startRow := 1
	if ply.Colour == Black {
		startRow = 6
	}
	if piece.Kind == Pawn && origin.Row == startRow && abs(ply.Target.Row-origin.Row) == 2 {
		midRow := (origin.Row + ply.Target.Row) / 2
		next.SetEnPassant(Square{Row: midRow, Col: origin.Col})
	}

	updateCastleRightsOnMove(next, piece, origin)

	isPawnMove := piece.Kind == Pawn
	if isPawnMove || capture {
		next.SetHalfmoveClock(0)
	} else {
		next.SetHalfmoveClock(next.HalfmoveClock() + 1)
	}
	if ply.Colour == Black {
		next.SetFullmoveClock(next.FullmoveClock() + 1)
	}

	next.SetSideToMove(ply.Colour.Opponent())
	return next, nil
}

func updateCastleRightsOnMove(b *Board, piece Piece, origin Square) {
	if piece.Kind == King {
		if piece.Colour == White {
			b.DropCastleRight(WhiteKingside)
			b.DropCastleRight(WhiteQueenside)
		} else {
			b.DropCastleRight(BlackKingside)
			b.DropCastleRight(BlackQueenside)
		}
		return
	}
	if piece.Kind != Rook {
		return
	}
	if origin == rookHome(piece.Colour, Kingside) {
		b.DropCastleRight(CastleRight{Colour: piece.Colour, Side: Kingside})
	}
	if origin == rookHome(piece.Colour, Queenside) {
		b.DropCastleRight(CastleRight{Colour: piece.Colour, Side: Queenside})
	}
}

// resolveOrigin finds the unique square a piece of the given kind and
// colour must have moved from to reach target: it collects every matching
// piece whose geometry reaches target, filters out moves that would leave
// its own king attacked by an enemy bishop, rook or queen (see [legal]; king
// moves are never filtered), and applies disambiguator to break any
// remaining tie.
func resolveOrigin(board *Board, piece Piece, target Square, disambiguator *Disambiguator, kingSquare Square) (Square, error) {
	var candidates []Square
	for _, sq := range board.FindAll(piece) {
		if !destinations(board, piece, sq)[target] {
			continue
		}
		if !legal(board, piece, sq, target, kingSquare) {
			continue
		}
		candidates = append(candidates, sq)
	}

	switch len(candidates) {
	case 0:
		return Square{}, NoCandidate{Piece: piece, Target: target}
	case 1:
		return candidates[0], nil
	}

	if disambiguator == nil {
		return Square{}, AmbiguousPly{Piece: piece, Target: target, Candidates: candidates}
	}

	switch disambiguator.Kind {
	case DisambiguatorSquare:
		for _, sq := range candidates {
			if sq == disambiguator.Square {
				return sq, nil
			}
		}
		return Square{}, NoCandidate{Piece: piece, Target: target}
	case DisambiguatorFile:
		var filtered []Square
		for _, sq := range candidates {
			if sq.Col == disambiguator.File {
				filtered = append(filtered, sq)
			}
		}
		candidates = filtered
	case DisambiguatorRank:
		var filtered []Square
		for _, sq := range candidates {
			if sq.Row == disambiguator.Rank {
				filtered = append(filtered, sq)
			}
		}
		candidates = filtered
	}

	if len(candidates) != 1 {
		return Square{}, AmbiguousPly{Piece: piece, Target: target, Candidates: candidates}
	}
	return candidates[0], nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
