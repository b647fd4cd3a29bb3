package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/askeland/minesolve/board"
)

// BoardSnapshot captures a mine layout, along with the seed that produced it,
// in a form that can be stored and replayed.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

// Snapshot serializes the mine layout of a setup. Mines become "*", clear
// cells ".", one row per line.
func Snapshot(setup *Setup, seed int64) *BoardSnapshot {
	var rows strings.Builder
	for pos := range setup.Positions() {
		if setup.FieldAt(pos).IsMine() {
			rows.WriteByte('*')
		} else {
			rows.WriteByte('.')
		}
		if pos.X == setup.Width()-1 && pos.Y != setup.Height()-1 {
			rows.WriteByte('\n')
		}
	}
	return &BoardSnapshot{Seed: seed, SerializedBoard: rows.String()}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// CreateSetup parses the serialized rows back into a Setup.
func (snapshot *BoardSnapshot) CreateSetup() (*Setup, error) {
	rows := strings.Split(snapshot.SerializedBoard, "\n")
	height := len(rows)
	width := len(rows[0])
	if height == 0 || width == 0 {
		return nil, fmt.Errorf("snapshot: empty board")
	}

	mines := board.New[bool](width, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("snapshot: row %d has %d cells, want %d", y, len(row), width)
		}
		for x, c := range row {
			switch c {
			case '*':
				mines.Set(board.V(x, y), true)
			case '.':
			default:
				return nil, fmt.Errorf("snapshot: unknown cell %q at %v", c, board.V(x, y))
			}
		}
	}

	return NewSetup(mines), nil
}

// LoadSnapshot deserializes a snapshot previously produced by Serialize.
func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
