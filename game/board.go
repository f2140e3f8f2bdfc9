package game

import "math/bits"

// BitPattern is a 64-bit set of squares, one bit per square index
// (a1 = bit 0, index = rank*8 + file).
type BitPattern uint64

// Board is the position seen from the side to move: Player is the mover's
// discs, Opponent the other side's. It carries no color information; that
// lives in GameState.
type Board struct {
	player   BitPattern
	opponent BitPattern
}

// Canonical opening position: the mover (black) holds e4 and d5,
// the opponent (white) holds d4 and e5.
const (
	startPlayer   BitPattern = 1<<28 | 1<<35
	startOpponent BitPattern = 1<<27 | 1<<36
)

// NewBoard returns the opening position.
func NewBoard() Board {
	return Board{player: startPlayer, opponent: startOpponent}
}

// BoardFromBits builds an arbitrary position. Mostly useful for setting up
// endgames and tests.
func BoardFromBits(player, opponent BitPattern) Board {
	return Board{player: player, opponent: opponent}
}

func (b Board) Player() BitPattern   { return b.player }
func (b Board) Opponent() BitPattern { return b.opponent }

// Apply plays a flip set (empty for a pass) and swaps sides, returning the
// position from the new mover's perspective. The flip set must include the
// played square, as produced by GetFlip.
func (b Board) Apply(flip BitPattern) Board {
	return Board{
		player:   NewPlayer(flip, b.opponent),
		opponent: NewOpponent(flip, b.player),
	}
}

// Count returns the number of mover and opponent discs.
func (b Board) Count() (player, opponent int) {
	return bits.OnesCount64(uint64(b.player)), bits.OnesCount64(uint64(b.opponent))
}

func (b Board) full() bool {
	return b.player|b.opponent == ^BitPattern(0)
}
