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

package pgn

import (
	"strconv"

	chess "github.com/sarsapar1lla/pigin-go"
)

// parseMoveText parses an interleaving of move numbers, ply tokens,
// comments, and an optional early result token that terminates the
// section. A unit is White-number + White-ply + optional comment, then
// EITHER a result (terminate) OR an optional Black-number + Black-ply +
// optional comment + optional result. It returns the flat ordered ply list
// and the terminating result.
func parseMoveText(s *scanner) ([]chess.Ply, chess.Result, error) {
	var plies []chess.Ply
	moveNumber := 1
	startColour := chess.White

	// A bare Black continuation at the very start of move text (game begins
	// mid-move from a non-standard FEN) is admitted here.
	s.skipWhitespace()
	if n, ok := scanBlackContinuationNumber(s); ok {
		moveNumber = n
		startColour = chess.Black
	}

	nextColour := startColour
	for {
		s.skipWhitespace()
		if s.eof() {
			return plies, chess.Ongoing, nil
		}
		if result, ok := scanResultToken(s); ok {
			return plies, result, nil
		}

		if nextColour == chess.White {
			n, err := scanWhiteMoveNumber(s)
			if err != nil {
				return nil, chess.Ongoing, err
			}
			moveNumber = n
		}

		ply, err := parseOnePly(s, nextColour, moveNumber)
		if err != nil {
			return nil, chess.Ongoing, err
		}
		plies = append(plies, ply)

		if result, ok := scanResultToken(s); ok {
			return plies, result, nil
		}

		if nextColour == chess.White {
			nextColour = chess.Black
			// A "N..." re-anchor may appear here if a variation or comment
			// interrupted the flow between White's ply and Black's.
			s.skipWhitespace()
			if n, ok := scanBlackContinuationNumber(s); ok {
				moveNumber = n
			}
			continue
		}

		nextColour = chess.White
		moveNumber++
	}
}

// parseOnePly parses a ply token followed by its optional comment,
// skipping the whitespace around both.
func parseOnePly(s *scanner, colour chess.Colour, moveNumber int) (chess.Ply, error) {
	s.skipWhitespace()
	ply, err := parsePlyToken(s, colour, moveNumber)
	if err != nil {
		return chess.Ply{}, err
	}
	s.skipPlyTerminator()
	if comment, ok, err := scanComment(s); err != nil {
		return chess.Ply{}, err
	} else if ok {
		ply.Comment = comment
	}
	s.skipWhitespace()
	return ply, nil
}

// scanWhiteMoveNumber matches "N." optionally followed by whitespace or a
// line break before the White ply.
func scanWhiteMoveNumber(s *scanner) (int, error) {
	start := s.pos
	for {
		b, ok := s.peekByte()
		if !ok || b < '0' || b > '9' {
			break
		}
		s.advance()
	}
	if s.pos == start {
		return 0, UnexpectedToken{Context: "move number", OffendingPrefix: s.prefix(16)}
	}
	n, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil {
		return 0, UnexpectedToken{Context: "move number", OffendingPrefix: s.prefix(16)}
	}
	if !s.consumeLiteral(".") {
		return 0, UnexpectedToken{Context: "move number", OffendingPrefix: s.prefix(16)}
	}
	// Consume any further dots (some generators pad "1." with "1...").
	for s.consumeLiteral(".") {
	}
	s.skipWhitespace()
	return n, nil
}

// scanBlackContinuationNumber matches "N...", either at the very start of
// move text (a game that begins mid-move) or after a White ply (a re-anchor
// before Black's ply). It consumes nothing when no match is found.
func scanBlackContinuationNumber(s *scanner) (int, bool) {
	start := s.pos
	for {
		b, ok := s.peekByte()
		if !ok || b < '0' || b > '9' {
			break
		}
		s.advance()
	}
	if s.pos == start {
		return 0, false
	}
	numStr := s.src[start:s.pos]
	if !s.consumeLiteral("...") {
		s.pos = start
		return 0, false
	}
	s.skipWhitespace()
	n, err := strconv.Atoi(numStr)
	if err != nil {
		s.pos = start
		return 0, false
	}
	return n, true
}

var squareFileSet = func() [256]bool {
	var set [256]bool
	for c := byte('a'); c <= 'h'; c++ {
		set[c] = true
	}
	return set
}()

var squareRankSet = func() [256]bool {
	var set [256]bool
	for c := byte('1'); c <= '8'; c++ {
		set[c] = true
	}
	return set
}()

// parsePlyToken matches one ply: castle, or optional piece letter +
// optional disambiguator + optional 'x' + target square + optional
// '=PROMO' + optional check mark.
func parsePlyToken(s *scanner, colour chess.Colour, moveNumber int) (chess.Ply, error) {
	if kind, ok := scanCastleToken(s); ok {
		check := scanCheckMark(s)
		return chess.Ply{
			Kind:       kind,
			Colour:     colour,
			Check:      check,
			MoveNumber: moveNumber,
		}, nil
	}

	pieceKind, hasPieceLetter := scanPieceLetter(s)
	if !hasPieceLetter {
		pieceKind = chess.Pawn
	}

	start := s.pos
	for {
		b, ok := s.peekByte()
		if !ok || !(squareFileSet[b] || squareRankSet[b] || b == 'x') {
			break
		}
		s.advance()
	}
	core := s.src[start:s.pos]
	if len(core) < 2 {
		return chess.Ply{}, UnexpectedToken{Context: "ply", OffendingPrefix: s.prefix(16)}
	}

	targetStr := core[len(core)-2:]
	if !squareFileSet[targetStr[0]] || !squareRankSet[targetStr[1]] {
		return chess.Ply{}, UnexpectedToken{Context: "ply target square", OffendingPrefix: s.prefix(16)}
	}
	target := chess.Square{Row: int(targetStr[1] - '1'), Col: int(targetStr[0] - 'a')}

	remainder := core[:len(core)-2]
	capture := false
	if len(remainder) > 0 && remainder[len(remainder)-1] == 'x' {
		capture = true
		remainder = remainder[:len(remainder)-1]
	}

	var disambiguator *chess.Disambiguator
	switch len(remainder) {
	case 0:
		// no disambiguator
	case 1:
		b := remainder[0]
		switch {
		case squareFileSet[b]:
			disambiguator = &chess.Disambiguator{Kind: chess.DisambiguatorFile, File: int(b - 'a')}
		case squareRankSet[b]:
			disambiguator = &chess.Disambiguator{Kind: chess.DisambiguatorRank, Rank: int(b - '1')}
		default:
			return chess.Ply{}, UnexpectedToken{Context: "ply disambiguator", OffendingPrefix: s.prefix(16)}
		}
	case 2:
		if !squareFileSet[remainder[0]] || !squareRankSet[remainder[1]] {
			return chess.Ply{}, UnexpectedToken{Context: "ply disambiguator", OffendingPrefix: s.prefix(16)}
		}
		disambiguator = &chess.Disambiguator{
			Kind:   chess.DisambiguatorSquare,
			Square: chess.Square{Row: int(remainder[1] - '1'), Col: int(remainder[0] - 'a')},
		}
	default:
		return chess.Ply{}, UnexpectedToken{Context: "ply disambiguator", OffendingPrefix: s.prefix(16)}
	}

	ply := chess.Ply{
		Colour:        colour,
		Piece:         pieceKind,
		Target:        target,
		Disambiguator: disambiguator,
		Capture:       capture,
		MoveNumber:    moveNumber,
		Kind:          chess.PlyMove,
	}

	if s.consumeLiteral("=") {
		promoKind, ok := scanPieceLetter(s)
		if !ok {
			return chess.Ply{}, UnexpectedToken{Context: "promotion piece", OffendingPrefix: s.prefix(16)}
		}
		ply.Kind = chess.PlyPromotion
		ply.PromotesTo = promoKind
	}

	ply.Check = scanCheckMark(s)
	return ply, nil
}
