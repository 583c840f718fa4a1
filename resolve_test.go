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

import (
	"errors"
	"testing"
)

func movePly(colour Colour, piece PieceKind, target Square, disambiguator *Disambiguator) Ply {
	return Ply{Kind: PlyMove, Colour: colour, Piece: piece, Target: target, Disambiguator: disambiguator}
}

func TestDoublePawnPushSetsEnPassantTarget(t *testing.T) {
	start, err := ParseFEN(DefaultFEN)
	if err != nil {
		t.Fatalf("ParseFEN(DefaultFEN): %v", err)
	}

	history, err := Replay(start, []Ply{movePly(White, Pawn, MustSquare(3, 4), nil)})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	next := history[1]

	if _, ok := next.Occupant(MustSquare(1, 4)); ok {
		t.Error("e2 still occupied after 1. e4")
	}
	p, ok := next.Occupant(MustSquare(3, 4))
	if !ok || p != (Piece{Colour: White, Kind: Pawn}) {
		t.Errorf("Occupant(e4) = (%+v, %v), want (White Pawn, true)", p, ok)
	}
	ep, hasEp := next.EnPassant()
	if !hasEp || ep != MustSquare(2, 4) {
		t.Errorf("en-passant target = (%v, %v), want (e3, true)", ep, hasEp)
	}
	if next.HalfmoveClock() != 0 {
		t.Errorf("halfmove clock = %d, want 0", next.HalfmoveClock())
	}
	if next.FullmoveClock() != 1 {
		t.Errorf("fullmove clock = %d, want 1", next.FullmoveClock())
	}
	if next.SideToMove() != Black {
		t.Errorf("side to move = %v, want Black", next.SideToMove())
	}
}

func TestEnPassantCaptureClearsTarget(t *testing.T) {
	start, err := ParseFEN(DefaultFEN)
	if err != nil {
		t.Fatalf("ParseFEN(DefaultFEN): %v", err)
	}

	fileDisambiguator := &Disambiguator{Kind: DisambiguatorFile, File: 4} // 'e'
	plies := []Ply{
		movePly(White, Pawn, MustSquare(3, 4), nil),                        // 1. e4
		movePly(Black, Pawn, MustSquare(5, 0), nil),                        // a6
		movePly(White, Pawn, MustSquare(4, 4), nil),                        // 2. e5
		movePly(Black, Pawn, MustSquare(4, 3), nil),                        // d5
		{Kind: PlyMove, Colour: White, Piece: Pawn, Target: MustSquare(5, 3), Disambiguator: fileDisambiguator, Capture: true}, // 3. exd6
	}

	history, err := Replay(start, plies)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	next := history[len(history)-1]

	p, ok := next.Occupant(MustSquare(5, 3))
	if !ok || p != (Piece{Colour: White, Kind: Pawn}) {
		t.Errorf("Occupant(d6) = (%+v, %v), want (White Pawn, true)", p, ok)
	}
	if _, ok := next.Occupant(MustSquare(4, 3)); ok {
		t.Error("d5 still occupied after en-passant capture")
	}
	if _, ok := next.EnPassant(); ok {
		t.Error("en-passant target still set after the capturing ply")
	}
	if next.HalfmoveClock() != 0 {
		t.Errorf("halfmove clock = %d, want 0", next.HalfmoveClock())
	}
}

func TestPromotionToKnightReplacesPawn(t *testing.T) {
	start := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).
		Piece(Piece{Colour: White, Kind: Pawn}, MustSquare(6, 1)).
		Piece(Piece{Colour: Black, Kind: King}, MustSquare(7, 4)).
		SideToMove(White).
		Build()

	ply := Ply{Kind: PlyPromotion, Colour: White, Piece: Pawn, Target: MustSquare(7, 1), PromotesTo: Knight}
	history, err := Replay(start, []Ply{ply})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	next := history[1]

	if _, ok := next.Occupant(MustSquare(6, 1)); ok {
		t.Error("b7 still occupied after promotion")
	}
	p, ok := next.Occupant(MustSquare(7, 1))
	if !ok || p != (Piece{Colour: White, Kind: Knight}) {
		t.Errorf("Occupant(b8) = (%+v, %v), want (White Knight, true)", p, ok)
	}
}

func TestKingsideCastleUpdatesBothPiecesAndRights(t *testing.T) {
	start := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).
		Piece(Piece{Colour: White, Kind: Rook}, MustSquare(0, 7)).
		Piece(Piece{Colour: Black, Kind: King}, MustSquare(7, 4)).
		Piece(Piece{Colour: Black, Kind: Rook}, MustSquare(7, 7)).
		CastleRights(WhiteKingside, BlackKingside).
		SideToMove(White).
		Build()

	history, err := Replay(start, []Ply{{Kind: PlyKingsideCastle, Colour: White}})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	next := history[1]

	king, ok := next.Occupant(MustSquare(0, 6))
	if !ok || king != (Piece{Colour: White, Kind: King}) {
		t.Errorf("Occupant(g1) = (%+v, %v), want (White King, true)", king, ok)
	}
	rook, ok := next.Occupant(MustSquare(0, 5))
	if !ok || rook != (Piece{Colour: White, Kind: Rook}) {
		t.Errorf("Occupant(f1) = (%+v, %v), want (White Rook, true)", rook, ok)
	}
	if next.HasCastleRight(WhiteKingside) {
		t.Error("WhiteKingside right still present after castling")
	}
	if !next.HasCastleRight(BlackKingside) {
		t.Error("BlackKingside right was dropped by White's castle")
	}
}

func TestDisambiguationByFileSelectsCorrectRook(t *testing.T) {
	start := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 6)).
		Piece(Piece{Colour: White, Kind: Rook}, MustSquare(0, 0)).
		Piece(Piece{Colour: White, Kind: Rook}, MustSquare(0, 4)).
		Piece(Piece{Colour: Black, Kind: King}, MustSquare(7, 4)).
		SideToMove(White).
		Build()

	ply := movePly(White, Rook, MustSquare(0, 3), &Disambiguator{Kind: DisambiguatorFile, File: 0})
	history, err := Replay(start, []Ply{ply})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	next := history[1]

	if _, ok := next.Occupant(MustSquare(0, 0)); ok {
		t.Error("a1 still occupied after Rad1")
	}
	rook, ok := next.Occupant(MustSquare(0, 3))
	if !ok || rook != (Piece{Colour: White, Kind: Rook}) {
		t.Errorf("Occupant(d1) = (%+v, %v), want (White Rook, true)", rook, ok)
	}
	other, ok := next.Occupant(MustSquare(0, 4))
	if !ok || other != (Piece{Colour: White, Kind: Rook}) {
		t.Error("rook on e1 should be unaffected by Rad1")
	}
}

// TestPinFiltersOutPinnedKnightLeavingUniqueCandidate covers two knights
// that can geometrically reach the same square, where one is pinned
// against its king by an enemy rook and gets filtered out by the
// legality check, leaving a unique candidate with no disambiguator
// required. A knight can only be genuinely pinned along a line it cannot
// itself stay on, so the pinned knight here sits on the king's own file
// rather than sharing the target square's file with its unpinned twin.
func TestPinFiltersOutPinnedKnightLeavingUniqueCandidate(t *testing.T) {
	start := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).
		Piece(Piece{Colour: White, Kind: Knight}, MustSquare(1, 4)). // e2, pinned down the e-file
		Piece(Piece{Colour: White, Kind: Knight}, MustSquare(2, 1)). // b3, unpinned
		Piece(Piece{Colour: Black, Kind: Rook}, MustSquare(7, 4)).   // e8
		Piece(Piece{Colour: Black, Kind: King}, MustSquare(7, 0)).
		SideToMove(White).
		Build()

	history, err := Replay(start, []Ply{movePly(White, Knight, MustSquare(3, 3), nil)}) // Nd4
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	next := history[1]

	if p, ok := next.Occupant(MustSquare(1, 4)); !ok || p != (Piece{Colour: White, Kind: Knight}) {
		t.Error("pinned knight on e2 should not have moved")
	}
	if _, ok := next.Occupant(MustSquare(2, 1)); ok {
		t.Error("unpinned knight on b3 should have moved off b3")
	}
	p, ok := next.Occupant(MustSquare(3, 3))
	if !ok || p != (Piece{Colour: White, Kind: Knight}) {
		t.Errorf("Occupant(d4) = (%+v, %v), want (White Knight, true)", p, ok)
	}
}

func TestResolveOriginNoCandidateError(t *testing.T) {
	start := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).
		Piece(Piece{Colour: Black, Kind: King}, MustSquare(7, 4)).
		SideToMove(White).
		Build()

	_, err := Replay(start, []Ply{movePly(White, Queen, MustSquare(4, 4), nil)})
	var noCandidate NoCandidate
	if !errors.As(err, &noCandidate) {
		t.Errorf("Replay with no queen on the board returned %v, want NoCandidate", err)
	}
}

func TestResolveOriginAmbiguousPlyError(t *testing.T) {
	start := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 6)).
		Piece(Piece{Colour: White, Kind: Rook}, MustSquare(0, 0)).
		Piece(Piece{Colour: White, Kind: Rook}, MustSquare(0, 4)).
		Piece(Piece{Colour: Black, Kind: King}, MustSquare(7, 4)).
		SideToMove(White).
		Build()

	_, err := Replay(start, []Ply{movePly(White, Rook, MustSquare(0, 3), nil)})
	var ambiguous AmbiguousPly
	if !errors.As(err, &ambiguous) {
		t.Errorf("Replay with two rooks able to reach d1 and no disambiguator returned %v, want AmbiguousPly", err)
	}
}

func TestIllegalCastleWithoutRight(t *testing.T) {
	start := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).
		Piece(Piece{Colour: White, Kind: Rook}, MustSquare(0, 7)).
		Piece(Piece{Colour: Black, Kind: King}, MustSquare(7, 4)).
		SideToMove(White).
		Build()

	_, err := Replay(start, []Ply{{Kind: PlyKingsideCastle, Colour: White}})
	if err == nil {
		t.Fatal("castling without the right succeeded, want IllegalCastle error")
	}
	if _, ok := err.(IllegalCastle); !ok {
		t.Errorf("error = %v (%T), want IllegalCastle", err, err)
	}
}

