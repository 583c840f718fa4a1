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

// CheckMarker is one of the two annotations a ply may carry. It is
// preserved verbatim from the source text and never audited against the
// recomputed position — a parser has no business second-guessing the
// annotation a game's recorder actually wrote down.
type CheckMarker uint8

const (
	NoCheckMarker CheckMarker = iota
	Check
	Checkmate
)

// DisambiguatorKind distinguishes the three forms of origin disambiguator
// algebraic notation allows.
type DisambiguatorKind uint8

const (
	DisambiguatorFile DisambiguatorKind = iota
	DisambiguatorRank
	DisambiguatorSquare
)

// Disambiguator narrows the candidate origins for an ambiguous ply.
type Disambiguator struct {
	Kind DisambiguatorKind
	// File/Rank are used when Kind is DisambiguatorFile/DisambiguatorRank
	// respectively. Square is used when Kind is DisambiguatorSquare.
	File   int
	Rank   int
	Square Square
}

// PlyKind tags the variant a [Ply] carries.
type PlyKind uint8

const (
	PlyKingsideCastle PlyKind = iota
	PlyQueensideCastle
	PlyMove
	PlyPromotion
)

// Ply is the syntactic description of one half-move, as produced by the PGN
// move-text parser. It has not yet been resolved to a unique origin
// square; that is the job of [Replay] / the resolver in resolve.go.
type Ply struct {
	Kind PlyKind

	Colour Colour

	// Piece is set for PlyMove and PlyPromotion. For PlyMove it is the
	// piece making the move (King for castles is implicit, not stored
	// here). For PlyPromotion it is always Pawn.
	Piece PieceKind
	// Target is the destination square for PlyMove and PlyPromotion.
	Target Square
	// PromotesTo is set only for PlyPromotion.
	PromotesTo PieceKind

	Disambiguator   *Disambiguator
	Capture         bool
	Check           CheckMarker

	// MoveNumber and Comment decorate the parsed ply; they play no role
	// in move resolution.
	MoveNumber int
	Comment    string
}
