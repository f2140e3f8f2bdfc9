package searcher

import (
	"math/bits"

	"golang.org/x/exp/rand"

	"othello/game"
)

// Random picks uniformly among the legal moves. Baseline opponent for match
// play; needs no evaluator.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(gs *game.GameState) (game.Square, bool) {
	moves := game.GetMoves(gs.Board.Player(), gs.Board.Opponent())
	if moves == 0 {
		return 0, true
	}
	n := r.rng.Intn(bits.OnesCount64(uint64(moves)))
	for ; n > 0; n-- {
		moves &= moves - 1
	}
	return game.Square(bits.TrailingZeros64(uint64(moves))), false
}
