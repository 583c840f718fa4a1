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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoardBuilderDefaults(t *testing.T) {
	b := NewBoardBuilder().Build()
	if b.SideToMove() != White {
		t.Errorf("default side to move = %v, want White", b.SideToMove())
	}
	if b.HalfmoveClock() != 0 {
		t.Errorf("default halfmove clock = %d, want 0", b.HalfmoveClock())
	}
	if b.FullmoveClock() != 1 {
		t.Errorf("default fullmove clock = %d, want 1", b.FullmoveClock())
	}
	if _, ok := b.EnPassant(); ok {
		t.Error("default board has an en-passant target, want none")
	}
}

func TestBoardPutOccupantRemove(t *testing.T) {
	b := NewBoardBuilder().Build()
	sq := MustSquare(3, 3)
	p := Piece{Colour: White, Kind: Queen}

	b.Put(p, sq)
	got, ok := b.Occupant(sq)
	if !ok || got != p {
		t.Errorf("Occupant(%v) = (%+v, %v), want (%+v, true)", sq, got, ok, p)
	}

	b.Remove(sq)
	if _, ok := b.Occupant(sq); ok {
		t.Errorf("Occupant(%v) after Remove still present", sq)
	}
}

func TestBoardCloneIndependence(t *testing.T) {
	b := NewBoardBuilder().Piece(Piece{Colour: White, Kind: King}, MustSquare(0, 4)).Build()
	clone := b.Clone()

	clone.Put(Piece{Colour: Black, Kind: Queen}, MustSquare(4, 4))
	clone.DropCastleRight(WhiteKingside)

	if _, ok := b.Occupant(MustSquare(4, 4)); ok {
		t.Error("mutating clone affected original board's occupants")
	}
}

func TestBoardFindAll(t *testing.T) {
	b := NewBoardBuilder().
		Piece(Piece{Colour: White, Kind: Rook}, MustSquare(0, 0)).
		Piece(Piece{Colour: White, Kind: Rook}, MustSquare(0, 7)).
		Piece(Piece{Colour: Black, Kind: Rook}, MustSquare(7, 0)).
		Build()

	got := b.FindAll(Piece{Colour: White, Kind: Rook})
	want := map[Square]bool{MustSquare(0, 0): true, MustSquare(0, 7): true}
	if len(got) != len(want) {
		t.Fatalf("FindAll returned %d squares, want %d", len(got), len(want))
	}
	for _, sq := range got {
		if !want[sq] {
			t.Errorf("FindAll returned unexpected square %v", sq)
		}
	}
}

func TestParseFENRoundTrip(t *testing.T) {
	board, err := ParseFEN(DefaultFEN)
	if err != nil {
		t.Fatalf("ParseFEN(DefaultFEN) returned error: %v", err)
	}
	if got := board.FEN(); got != DefaultFEN {
		t.Errorf("round-tripped FEN = %q, want %q", got, DefaultFEN)
	}
}

func TestParseFENFields(t *testing.T) {
	board, err := ParseFEN(DefaultFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.SideToMove() != White {
		t.Errorf("side to move = %v, want White", board.SideToMove())
	}
	for _, r := range []CastleRight{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if !board.HasCastleRight(r) {
			t.Errorf("starting position missing castle right %v", r)
		}
	}
	if _, ok := board.EnPassant(); ok {
		t.Error("starting position has an en-passant target")
	}
	if board.HalfmoveClock() != 0 || board.FullmoveClock() != 1 {
		t.Errorf("clocks = (%d, %d), want (0, 1)", board.HalfmoveClock(), board.FullmoveClock())
	}
	p, ok := board.Occupant(MustSquare(0, 4))
	if !ok || p != (Piece{Colour: White, Kind: King}) {
		t.Errorf("Occupant(e1) = (%+v, %v), want ({White King}, true)", p, ok)
	}
}

func TestParseFENRejectsWrongFieldCount(t *testing.T) {
	if _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"); err == nil {
		t.Error("ParseFEN with 4 fields returned nil error, want InvalidField")
	}
}

func TestParseFENRejectsMalformedBoard(t *testing.T) {
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",  // too few squares
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",          // too few ranks
		"rnbqkbzr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // bad piece letter
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) returned nil error, want InvalidField", fen)
		}
	}
}

func TestBoardQueryMethodsIgnoreClonedMutation(t *testing.T) {
	start := NewBoardBuilder().CastleRights(WhiteKingside, WhiteQueenside).Build()
	next := start.Clone()
	next.DropCastleRight(WhiteQueenside)

	if !cmp.Equal(start.CastleRights(), []CastleRight{WhiteKingside, WhiteQueenside}) {
		t.Errorf("original board's castle rights changed after cloned mutation: %v", start.CastleRights())
	}
	if !cmp.Equal(next.CastleRights(), []CastleRight{WhiteKingside}) {
		t.Errorf("clone's castle rights = %v, want [WhiteKingside]", next.CastleRights())
	}
}
