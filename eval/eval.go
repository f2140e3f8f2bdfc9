// Package eval loads and applies the positional weight table used by move
// selection. The table is read once at startup and never written again.
package eval

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"os"

	"othello/game"
)

// NumWeights is one weight per board square.
const NumWeights = 64

// Table holds per-square weights. Immutable after Load.
type Table struct {
	weights [NumWeights]int16
}

// New builds a table from in-memory weights.
func New(weights [NumWeights]int16) *Table {
	return &Table{weights: weights}
}

// Load reads a weight table: NumWeights little-endian int16 values. A short,
// long or unreadable file fails the load; callers decide what to fall back
// to.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open eval table: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat eval table: %w", err)
	}
	if info.Size() != NumWeights*2 {
		return nil, fmt.Errorf("eval table %s: want %d bytes, have %d", path, NumWeights*2, info.Size())
	}

	t := &Table{}
	if err := binary.Read(f, binary.LittleEndian, &t.weights); err != nil {
		return nil, fmt.Errorf("read eval table: %w", err)
	}
	return t, nil
}

// Evaluate scores a position from the perspective of the side to move in it:
// the mover's square weights minus the opponent's.
func (t *Table) Evaluate(player, opponent game.BitPattern) int {
	return t.sum(player) - t.sum(opponent)
}

func (t *Table) sum(b game.BitPattern) int {
	total := 0
	for b != 0 {
		total += int(t.weights[bits.TrailingZeros64(uint64(b))])
		b &= b - 1
	}
	return total
}
