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

// Result is the game termination marker.
type Result uint8

const (
	Ongoing Result = iota
	WhiteWin
	BlackWin
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// ParseResultToken parses one of the four exact result tokens.
func ParseResultToken(tok string) (Result, error) {
	switch tok {
	case "1-0":
		return WhiteWin, nil
	case "0-1":
		return BlackWin, nil
	case "1/2-1/2":
		return Draw, nil
	case "*":
		return Ongoing, nil
	default:
		return Ongoing, InvalidField{FieldName: "result", Value: tok, Reason: `must be "1-0", "0-1", "1/2-1/2", or "*"`}
	}
}

// Tags is the ordered tag-name/value mapping from a PGN tag section. Names
// preserve the order they appeared in the source so a round-tripped PGN
// reproduces the original tag order; lookups are by name.
type Tags struct {
	names  []string
	values map[string]string
}

// NewTags returns an empty Tags.
func NewTags() *Tags {
	return &Tags{values: make(map[string]string)}
}

// Set adds name=value, or replaces value if name was already set (order is
// preserved on replace: the name keeps its original position).
func (t *Tags) Set(name, value string) {
	if _, ok := t.values[name]; !ok {
		t.names = append(t.names, name)
	}
	t.values[name] = value
}

// Get returns the value for name and whether it was present.
func (t *Tags) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Names returns the tag names in the order they were set.
func (t *Tags) Names() []string {
	return append([]string(nil), t.names...)
}

// Pgn is the parsed, validated description of a single game: tags, starting
// board, result, and the flat ply list.
type Pgn struct {
	Tags          *Tags
	StartingBoard *Board
	Result        Result
	Plies         []Ply
}

// Game pairs a parsed Pgn with its full replay trace. The trace has length
// len(Pgn.Plies)+1; trace[0] is the starting board and trace[len(trace)-1]
// is the board after the final ply.
type Game struct {
	Pgn   *Pgn
	Trace []*Board
}

// MakeGame is a pure aggregation: it does not replay anything itself, it
// just pairs a Pgn with an already-computed trace.
func MakeGame(pgn *Pgn, trace []*Board) *Game {
	return &Game{Pgn: pgn, Trace: trace}
}

// ReplayGame is a convenience that runs [Replay] over pgn's starting board
// and plies and aggregates the result via [MakeGame].
func ReplayGame(pgn *Pgn) (*Game, error) {
	trace, err := Replay(pgn.StartingBoard, pgn.Plies)
	if err != nil {
		return nil, err
	}
	return MakeGame(pgn, trace), nil
}
