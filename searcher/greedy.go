package searcher

import (
	"math/bits"

	"othello/eval"
	"othello/game"
)

// Greedy evaluates every legal move one ply deep and keeps the best. Ties go
// to the lowest square index, so the choice is reproducible for a given
// table and position.
type Greedy struct {
	evals *eval.Table
}

func NewGreedy(evals *eval.Table) *Greedy {
	return &Greedy{evals: evals}
}

// FindMove scans the legal moves in ascending square order. Each candidate
// position is scored for the opponent (who moves next there) and negated
// back to the acting side. An empty move set is a forced pass.
func (g *Greedy) FindMove(gs *game.GameState) (game.Square, bool) {
	player, opponent := gs.Board.Player(), gs.Board.Opponent()
	moves := game.GetMoves(player, opponent)
	if moves == 0 {
		return 0, true
	}

	best := game.Square(-1)
	bestScore := 0
	for rem := moves; rem != 0; rem &= rem - 1 {
		mv := game.Square(bits.TrailingZeros64(uint64(rem)))

		flip := game.GetFlip(mv, player, opponent)
		nextPlayer := game.NewPlayer(flip, opponent)
		nextOpponent := game.NewOpponent(flip, player)

		score := -g.evals.Evaluate(nextPlayer, nextOpponent)
		if best < 0 || score > bestScore {
			best, bestScore = mv, score
		}
	}
	return best, false
}
