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
	"strconv"
	"strings"
)

// ParseFEN parses a full six-field FEN string into a starting [Board]. It
// rejects anything but exactly six whitespace-separated fields; truncated
// four-field FENs (missing the halfmove/fullmove clocks, occasionally seen
// in PGN FEN tags) are the caller's responsibility to pre-normalise with
// halfmove=0, fullmove=1 before calling this.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, InvalidField{FieldName: "fen", Value: fen, Reason: "must have exactly 6 whitespace-separated fields"}
	}

	bb := NewBoardBuilder()
	if err := parseFENBoard(bb, fields[0]); err != nil {
		return nil, err
	}
	colour, err := parseColourToken(fields[1])
	if err != nil {
		return nil, err
	}
	bb.SideToMove(colour)

	rights, err := parseFENCastleRights(fields[2])
	if err != nil {
		return nil, err
	}
	bb.CastleRights(rights...)

	if fields[3] != "-" {
		sq, err := parseSquareToken(fields[3])
		if err != nil {
			return nil, InvalidField{FieldName: "en passant", Value: fields[3], Reason: err.Error()}
		}
		bb.EnPassant(sq)
	}

	halfmove, err := parseFENClock("halfmove clock", fields[4])
	if err != nil {
		return nil, err
	}
	bb.HalfmoveClock(halfmove)

	fullmove, err := parseFENClock("fullmove clock", fields[5])
	if err != nil {
		return nil, err
	}
	bb.FullmoveClock(fullmove)

	return bb.Build(), nil
}

func parseFENBoard(bb *BoardBuilder, body string) error {
	ranks := strings.Split(body, "/")
	if len(ranks) != 8 {
		return InvalidField{FieldName: "board", Value: body, Reason: "must have exactly 8 ranks separated by '/'"}
	}
	for i, rankStr := range ranks {
		row := 7 - i // top rank (row 7) is listed first
		col := 0
		for _, r := range rankStr {
			switch {
			case r >= '1' && r <= '8':
				col += int(r - '0')
			default:
				piece, err := parseFENPieceLetter(r)
				if err != nil {
					return err
				}
				if col > 7 {
					return InvalidField{FieldName: "board", Value: body, Reason: "rank has more than 8 squares"}
				}
				sq, sqErr := NewSquare(row, col)
				if sqErr != nil {
					return InvalidField{FieldName: "board", Value: body, Reason: sqErr.Error()}
				}
				bb.Piece(piece, sq)
				col++
			}
		}
		if col != 8 {
			return InvalidField{FieldName: "board", Value: body, Reason: "rank does not sum to 8 squares"}
		}
	}
	return nil
}

func parseFENCastleRights(s string) ([]CastleRight, error) {
	if s == "-" {
		return nil, nil
	}
	var rights []CastleRight
	for _, r := range s {
		switch r {
		case 'K':
			rights = append(rights, WhiteKingside)
		case 'Q':
			rights = append(rights, WhiteQueenside)
		case 'k':
			rights = append(rights, BlackKingside)
		case 'q':
			rights = append(rights, BlackQueenside)
		default:
			return nil, InvalidField{FieldName: "castle rights", Value: s, Reason: "must be a subset of \"KQkq\" or \"-\""}
		}
	}
	return rights, nil
}

func parseFENClock(name, s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, InvalidField{FieldName: name, Value: s, Reason: "must be a non-negative integer that fits in 8 bits"}
	}
	return int(n), nil
}

// FEN renders the board back to its six-field FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	sb.WriteString(b.fenBoardField())
	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.fenCastleField())
	sb.WriteByte(' ')
	if sq, ok := b.EnPassant(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveClock))
	return sb.String()
}

func (b *Board) fenBoardField() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			sq := Square{Row: row, Col: col}
			p, ok := b.Occupant(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row != 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func (b *Board) fenCastleField() string {
	s := ""
	if b.castleRights[WhiteKingside] {
		s += "K"
	}
	if b.castleRights[WhiteQueenside] {
		s += "Q"
	}
	if b.castleRights[BlackKingside] {
		s += "k"
	}
	if b.castleRights[BlackQueenside] {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
