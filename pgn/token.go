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
	"strings"

	chess "github.com/sarsapar1lla/pigin-go"
)

// scanSquare matches a file letter followed by a rank digit, e.g. "e4".
func scanSquare(s *scanner) (chess.Square, error) {
	fileByte, ok := s.peekByte()
	if !ok || fileByte < 'a' || fileByte > 'h' {
		return chess.Square{}, UnexpectedToken{Context: "square", OffendingPrefix: s.prefix(8)}
	}
	rankByte, ok := s.peekAt(1)
	if !ok || rankByte < '1' || rankByte > '8' {
		return chess.Square{}, UnexpectedToken{Context: "square", OffendingPrefix: s.prefix(8)}
	}
	sq := chess.Square{Row: int(rankByte - '1'), Col: int(fileByte - 'a')}
	s.advance()
	s.advance()
	return sq, nil
}

// scanPieceLetter matches one of N,B,R,Q,K. Absence (ok=false) implies a
// pawn move; it does not consume input when absent.
func scanPieceLetter(s *scanner) (kind chess.PieceKind, ok bool) {
	b, present := s.peekByte()
	if !present {
		return chess.Pawn, false
	}
	switch b {
	case 'N':
		kind = chess.Knight
	case 'B':
		kind = chess.Bishop
	case 'R':
		kind = chess.Rook
	case 'Q':
		kind = chess.Queen
	case 'K':
		kind = chess.King
	default:
		return chess.Pawn, false
	}
	s.advance()
	return kind, true
}

// scanCheckMark matches a trailing '+' or '#'.
func scanCheckMark(s *scanner) chess.CheckMarker {
	b, ok := s.peekByte()
	if !ok {
		return chess.NoCheckMarker
	}
	switch b {
	case '+':
		s.advance()
		return chess.Check
	case '#':
		s.advance()
		return chess.Checkmate
	default:
		return chess.NoCheckMarker
	}
}

// scanResultToken matches one of the four exact result tokens without
// consuming input on failure.
func scanResultToken(s *scanner) (chess.Result, bool) {
	for _, lit := range []string{"1/2-1/2", "1-0", "0-1", "*"} {
		if s.consumeLiteral(lit) {
			result, _ := chess.ParseResultToken(lit)
			return result, true
		}
	}
	return chess.Ongoing, false
}

// scanCastleToken matches "O-O"/"O-O-O" or the visually equivalent
// "0-0"/"0-0-0" (some PGN sources use the digit zero instead of the
// letter), without consuming input on failure. Queenside is checked first
// since "O-O-O" has "O-O" as a literal prefix.
func scanCastleToken(s *scanner) (kind chess.PlyKind, ok bool) {
	for _, lit := range []string{"O-O-O", "0-0-0"} {
		if s.hasPrefix(lit) {
			s.pos += len(lit)
			return chess.PlyQueensideCastle, true
		}
	}
	for _, lit := range []string{"O-O", "0-0"} {
		if s.hasPrefix(lit) {
			s.pos += len(lit)
			return chess.PlyKingsideCastle, true
		}
	}
	return 0, false
}

// scanTagPair matches "[" NAME " " "\"" VALUE "\"" "]" followed by an
// end-of-line sequence (spaces or tabs may precede it, and end of input is
// also accepted). NAME is a contiguous non-space run; VALUE may contain any
// non-'"' character.
func scanTagPair(s *scanner) (name, value string, err error) {
	if !s.consumeLiteral("[") {
		return "", "", UnexpectedToken{Context: "tag pair", OffendingPrefix: s.prefix(24)}
	}
	start := s.pos
	for {
		b, ok := s.peekByte()
		if !ok || isSpaceOrNewline(b) {
			break
		}
		s.advance()
	}
	name = s.src[start:s.pos]
	if name == "" {
		return "", "", UnexpectedToken{Context: "tag name", OffendingPrefix: s.prefix(24)}
	}

	s.skipWhitespace()
	if !s.consumeLiteral(`"`) {
		return "", "", UnexpectedToken{Context: "tag value opening quote", OffendingPrefix: s.prefix(24)}
	}
	start = s.pos
	for {
		b, ok := s.peekByte()
		if !ok {
			return "", "", UnexpectedToken{Context: "tag value", OffendingPrefix: s.prefix(24)}
		}
		if b == '"' {
			break
		}
		s.advance()
	}
	value = s.src[start:s.pos]
	s.advance() // closing quote

	if !s.consumeLiteral("]") {
		return "", "", UnexpectedToken{Context: "tag pair closing bracket", OffendingPrefix: s.prefix(24)}
	}
	for s.consumeLiteral(" ") || s.consumeLiteral("\t") {
	}
	if !s.eof() && !s.consumeLiteral("\n") && !s.consumeLiteral("\r\n") {
		return "", "", UnexpectedToken{Context: "tag pair end of line", OffendingPrefix: s.prefix(24)}
	}
	s.skipWhitespace()
	return name, value, nil
}

// scanComment matches either "{" ... "}" (internal line breaks collapsed to
// single spaces) or ";" ... end-of-line (trimmed).
func scanComment(s *scanner) (string, bool, error) {
	if s.consumeLiteral("{") {
		start := s.pos
		for {
			b, ok := s.peekByte()
			if !ok {
				return "", false, UnexpectedToken{Context: "block comment", OffendingPrefix: s.prefix(24)}
			}
			if b == '}' {
				break
			}
			s.advance()
		}
		raw := s.src[start:s.pos]
		s.advance() // closing brace
		collapsed := strings.Join(strings.Fields(raw), " ")
		return collapsed, true, nil
	}
	if s.consumeLiteral(";") {
		start := s.pos
		for {
			b, ok := s.peekByte()
			if !ok || b == '\n' {
				break
			}
			s.advance()
		}
		raw := s.src[start:s.pos]
		return strings.TrimSpace(raw), true, nil
	}
	return "", false, nil
}
