// Package searcher picks moves. The only search here is one ply deep:
// score every legal move's resulting position and take the best.
package searcher

import "othello/game"

// Agent selects a move for the side to move in gs. isPass reports a forced
// pass (empty legal-move set); otherwise mv is drawn from the current legal
// moves. Agents never mutate gs.
type Agent interface {
	FindMove(gs *game.GameState) (mv game.Square, isPass bool)
}
