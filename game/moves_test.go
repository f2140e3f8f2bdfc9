package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bitset(squares ...Square) BitPattern {
	var b BitPattern
	for _, sq := range squares {
		b |= 1 << uint(sq)
	}
	return b
}

const (
	c3 Square = 18
	d3 Square = 19
	e3 Square = 20
	c4 Square = 26
	d4 Square = 27
	e4 Square = 28
	c5 Square = 34
	d5 Square = 35
	f5 Square = 37
	e5 Square = 36
	e6 Square = 44
)

func TestGetMoves(t *testing.T) {
	t.Run("opening position has the four classic moves", func(t *testing.T) {
		b := NewBoard()
		moves := GetMoves(b.Player(), b.Opponent())
		require.Equal(t, bitset(d3, c4, f5, e6), moves)
	})

	t.Run("no moves on an empty-player board", func(t *testing.T) {
		require.Equal(t, BitPattern(0), GetMoves(0, bitset(d4, e5)))
	})

	t.Run("rays do not wrap across board edges", func(t *testing.T) {
		// Mover on h1, opponent filling a2..g2: an east ray from h1 must not
		// wrap onto rank 2.
		player := bitset(7)
		opponent := bitset(8, 9, 10, 11, 12, 13, 14)
		moves := GetMoves(player, opponent)
		require.Zero(t, moves&bitset(15), "h2 is reachable only by wrapping")
	})
}

func TestGetFlip(t *testing.T) {
	t.Run("flip set carries the played square", func(t *testing.T) {
		b := NewBoard()
		flip := GetFlip(d3, b.Player(), b.Opponent())
		require.Equal(t, bitset(d3, d4), flip)
	})

	t.Run("flips along multiple directions at once", func(t *testing.T) {
		// Mover holds c4 and e6; playing e4 flips d4 (west ray to c4) and
		// e5 (north ray to e6) in the same move.
		got := GetFlip(e4, bitset(c4, e6), bitset(d4, e5))
		require.Equal(t, bitset(e4, d4, e5), got)
	})

	t.Run("vertical sandwich", func(t *testing.T) {
		// Mover on d6, opponent on d5: playing d4 flips d5.
		d6 := Square(43)
		got := GetFlip(d4, bitset(d6), bitset(d5))
		require.Equal(t, bitset(d4, d5), got)
	})

	t.Run("diagonal flip", func(t *testing.T) {
		// White e5(36) plays c3: north-east ray over d4 ends on e5.
		got := GetFlip(c3, bitset(e5), bitset(d4))
		require.Equal(t, bitset(c3, d4), got)
	})
}

func TestPositionUpdate(t *testing.T) {
	t.Run("apply swaps sides and moves flipped discs", func(t *testing.T) {
		b := NewBoard()
		flip := GetFlip(d3, b.Player(), b.Opponent())
		next := b.Apply(flip)
		require.Equal(t, bitset(e5), next.Player(), "white keeps only e5")
		require.Equal(t, bitset(d3, d4, e4, d5), next.Opponent())
	})

	t.Run("empty flip is a pure side swap", func(t *testing.T) {
		b := NewBoard()
		next := b.Apply(0)
		require.Equal(t, b.Opponent(), next.Player())
		require.Equal(t, b.Player(), next.Opponent())
	})
}

func TestIsGameOver(t *testing.T) {
	t.Run("opening position is not over", func(t *testing.T) {
		require.False(t, IsGameOver(NewBoard()))
	})

	t.Run("full board is over", func(t *testing.T) {
		b := Board{player: ^BitPattern(0), opponent: 0}
		require.True(t, IsGameOver(b))
	})

	t.Run("over when neither side can move", func(t *testing.T) {
		// Two lone discs in opposite corners: nothing to flip for anyone.
		b := Board{player: bitset(0), opponent: bitset(63)}
		require.True(t, IsGameOver(b))
	})

	t.Run("not over while one side is merely blocked", func(t *testing.T) {
		// a1 mover, a2 opponent, a3 empty: mover plays a3; the position is
		// live even though the opponent has no reply yet.
		b := Board{player: bitset(0), opponent: bitset(8)}
		require.False(t, IsGameOver(b))
	})
}
