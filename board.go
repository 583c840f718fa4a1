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

// DefaultFEN is the standard initial position.
const DefaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is a sparse occupied-squares map plus the rest of the FEN state:
// side to move, castle rights, en-passant target, and the two clocks.
//
// Board is semantically immutable once handed to the engine: every ply the
// engine executes clones the board first (see [Board.Clone]) and mutates the
// clone, so a board already present in a replay trace is never rewritten
// out from under the caller.
type Board struct {
	occupants map[Square]Piece

	sideToMove   Colour
	castleRights map[CastleRight]bool

	hasEnPassant bool
	enPassant    Square

	halfmoveClock int
	fullmoveClock int
}

// BoardBuilder constructs a [Board]. The zero value is not usable; start
// from [NewBoardBuilder].
type BoardBuilder struct {
	b Board
}

// NewBoardBuilder returns a builder for an otherwise empty board: White to
// move, no castle rights, no en-passant target, halfmove clock 0, fullmove
// clock 1.
func NewBoardBuilder() *BoardBuilder {
	return &BoardBuilder{
		b: Board{
			occupants:     make(map[Square]Piece),
			sideToMove:    White,
			castleRights:  make(map[CastleRight]bool),
			fullmoveClock: 1,
		},
	}
}

// Piece adds or replaces the occupant at sq.
func (bb *BoardBuilder) Piece(p Piece, sq Square) *BoardBuilder {
	bb.b.occupants[sq] = p
	return bb
}

// SideToMove sets the side to move.
func (bb *BoardBuilder) SideToMove(c Colour) *BoardBuilder {
	bb.b.sideToMove = c
	return bb
}

// CastleRights replaces the full set of available castle rights.
func (bb *BoardBuilder) CastleRights(rights ...CastleRight) *BoardBuilder {
	bb.b.castleRights = make(map[CastleRight]bool, len(rights))
	for _, r := range rights {
		bb.b.castleRights[r] = true
	}
	return bb
}

// EnPassant sets the en-passant target square.
func (bb *BoardBuilder) EnPassant(sq Square) *BoardBuilder {
	bb.b.hasEnPassant = true
	bb.b.enPassant = sq
	return bb
}

// HalfmoveClock sets the halfmove clock.
func (bb *BoardBuilder) HalfmoveClock(n int) *BoardBuilder {
	bb.b.halfmoveClock = n
	return bb
}

// FullmoveClock sets the fullmove clock.
func (bb *BoardBuilder) FullmoveClock(n int) *BoardBuilder {
	bb.b.fullmoveClock = n
	return bb
}

// Build finalises the board.
func (bb *BoardBuilder) Build() *Board {
	board := bb.b
	occupants := make(map[Square]Piece, len(board.occupants))
	for sq, p := range board.occupants {
		occupants[sq] = p
	}
	board.occupants = occupants
	rights := make(map[CastleRight]bool, len(board.castleRights))
	for r, v := range board.castleRights {
		if v {
			rights[r] = true
		}
	}
	board.castleRights = rights
	return &board
}

// Occupant returns the piece at sq and whether one is present.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	p, ok := b.occupants[sq]
	return p, ok
}

// FindAll returns every square occupied by a piece equal to p. Order is
// unspecified.
func (b *Board) FindAll(p Piece) []Square {
	var squares []Square
	for sq, occ := range b.occupants {
		if occ == p {
			squares = append(squares, sq)
		}
	}
	return squares
}

func (b *Board) SideToMove() Colour { return b.sideToMove }

// HasCastleRight reports whether r is still available.
func (b *Board) HasCastleRight(r CastleRight) bool {
	return b.castleRights[r]
}

// CastleRights returns the set of currently available castle rights. Order
// is unspecified.
func (b *Board) CastleRights() []CastleRight {
	var rights []CastleRight
	for _, r := range []CastleRight{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if b.castleRights[r] {
			rights = append(rights, r)
		}
	}
	return rights
}

// EnPassant returns the en-passant target square and whether one is set.
func (b *Board) EnPassant() (Square, bool) {
	return b.enPassant, b.hasEnPassant
}

func (b *Board) HalfmoveClock() int { return b.halfmoveClock }
func (b *Board) FullmoveClock() int { return b.fullmoveClock }

// Clone returns a deep copy: mutating the clone never affects b.
func (b *Board) Clone() *Board {
	occupants := make(map[Square]Piece, len(b.occupants))
	for sq, p := range b.occupants {
		occupants[sq] = p
	}
	rights := make(map[CastleRight]bool, len(b.castleRights))
	for r, v := range b.castleRights {
		if v {
			rights[r] = true
		}
	}
	clone := *b
	clone.occupants = occupants
	clone.castleRights = rights
	return &clone
}

// Put is an unconditional write of p onto sq.
func (b *Board) Put(p Piece, sq Square) {
	b.occupants[sq] = p
}

// Remove clears sq. A no-op if sq was already empty.
func (b *Board) Remove(sq Square) {
	delete(b.occupants, sq)
}

// DropCastleRight removes r from the available set. A no-op if already
// absent.
func (b *Board) DropCastleRight(r CastleRight) {
	delete(b.castleRights, r)
}

// SetEnPassant sets the en-passant target square.
func (b *Board) SetEnPassant(sq Square) {
	b.hasEnPassant = true
	b.enPassant = sq
}

// ClearEnPassant clears the en-passant target.
func (b *Board) ClearEnPassant() {
	b.hasEnPassant = false
	b.enPassant = Square{}
}

func (b *Board) SetHalfmoveClock(n int) { b.halfmoveClock = n }
func (b *Board) SetFullmoveClock(n int) { b.fullmoveClock = n }
func (b *Board) SetSideToMove(c Colour) { b.sideToMove = c }

// kingSquare returns the square of colour's king, or NoKing if the board
// holds none. If more than one is present, the first one FindAll reports
// is returned.
func (b *Board) kingSquare(colour Colour) (Square, error) {
	kings := b.FindAll(Piece{Colour: colour, Kind: King})
	if len(kings) == 0 {
		return Square{}, NoKing{Colour: colour}
	}
	return kings[0], nil
}
