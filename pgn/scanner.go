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

import "strings"

// scanner is the cursor the whole package's recursive-descent grammar reads
// from. It holds the entire remaining input in memory (PGN files are small
// text, never streamed media) and tracks a byte offset so error values can
// report an offending prefix and (for the stream parser) a position.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peekByte() (byte, bool) {
	if s.eof() {
		return 0, false
	}
	return s.src[s.pos], true
}

func (s *scanner) peekAt(offset int) (byte, bool) {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return 0, false
	}
	return s.src[i], true
}

func (s *scanner) advance() {
	if !s.eof() {
		s.pos++
	}
}

// rest returns the remaining input, for use as an error's offending prefix.
func (s *scanner) rest() string {
	return s.src[s.pos:]
}

// prefix returns up to n bytes of the remaining input, for a shorter
// offending-prefix message.
func (s *scanner) prefix(n int) string {
	rest := s.rest()
	if len(rest) <= n {
		return rest
	}
	return rest[:n] + "..."
}

func isSpaceOrNewline(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// skipWhitespace consumes any run of spaces, tabs, and line breaks.
func (s *scanner) skipWhitespace() {
	for {
		b, ok := s.peekByte()
		if !ok || !isSpaceOrNewline(b) {
			return
		}
		s.advance()
	}
}

// skipPlyTerminator consumes the whitespace that separates one ply token
// from whatever follows it (a comment, the next move number, or a result
// token). A single space and a CRLF both terminate a ply the same way, so
// this just skips any run of whitespace.
func (s *scanner) skipPlyTerminator() {
	s.skipWhitespace()
}

// hasPrefix reports whether the remaining input starts with lit, without
// consuming it.
func (s *scanner) hasPrefix(lit string) bool {
	return strings.HasPrefix(s.rest(), lit)
}

// consumeLiteral consumes lit if present and reports success.
func (s *scanner) consumeLiteral(lit string) bool {
	if s.hasPrefix(lit) {
		s.pos += len(lit)
		return true
	}
	return false
}
