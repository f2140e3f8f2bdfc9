package eval

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func writeTable(t *testing.T, weights [NumWeights]int16) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.dat")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, binary.Write(f, binary.LittleEndian, weights))
	require.NoError(t, f.Close())
	return path
}

func TestLoad(t *testing.T) {
	t.Run("round-trips weights from disk", func(t *testing.T) {
		var weights [NumWeights]int16
		weights[0] = 100
		weights[63] = -7

		table, err := Load(writeTable(t, weights))
		require.NoError(t, err)
		require.Equal(t, 100, table.Evaluate(1<<0, 0))
		require.Equal(t, 7, table.Evaluate(0, 1<<63))
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.dat"))
		require.Error(t, err)
	})

	t.Run("fails on a truncated file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.dat")
		require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("scores from the mover's perspective", func(t *testing.T) {
		var weights [NumWeights]int16
		weights[10] = 4
		weights[20] = 9
		table := New(weights)

		player := game.BitPattern(1 << 10)
		opponent := game.BitPattern(1 << 20)
		require.Equal(t, -5, table.Evaluate(player, opponent))
		require.Equal(t, 5, table.Evaluate(opponent, player), "swapping sides negates the score")
	})

	t.Run("empty position scores zero", func(t *testing.T) {
		table := New([NumWeights]int16{})
		require.Zero(t, table.Evaluate(0, 0))
	})
}
