package game

import "math/bits"

// GameState owns the current position and whose turn it is. Board always
// holds the side to move in the player slot regardless of color;
// BlackToMove says which color that is.
type GameState struct {
	Board       Board
	BlackToMove bool
}

// NewGameState returns a state at the opening position, black to move.
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Reset()
	return gs
}

// Reset starts a new game. Callable at any time.
func (gs *GameState) Reset() {
	gs.Board = NewBoard()
	gs.BlackToMove = true
}

// ApplyPass swaps the mover without touching any discs. Legality (the
// no-legal-move condition) is the caller's problem.
func (gs *GameState) ApplyPass() {
	gs.Board = gs.Board.Apply(0)
	gs.BlackToMove = !gs.BlackToMove
}

// ApplyMove plays mv for the side to move. It reports false and leaves the
// state untouched when mv is not currently legal.
func (gs *GameState) ApplyMove(mv Square) bool {
	moves := GetMoves(gs.Board.Player(), gs.Board.Opponent())
	if moves>>uint(mv)&1 == 0 {
		return false
	}
	flip := GetFlip(mv, gs.Board.Player(), gs.Board.Opponent())
	gs.Board = gs.Board.Apply(flip)
	gs.BlackToMove = !gs.BlackToMove
	return true
}

// IsOver reports whether the game has ended (full board, or neither side
// can move).
func (gs *GameState) IsOver() bool {
	return IsGameOver(gs.Board)
}

// CountDiscs returns absolute disc counts by color.
func (gs *GameState) CountDiscs() (black, white int) {
	blackBits, whiteBits := gs.Board.Player(), gs.Board.Opponent()
	if !gs.BlackToMove {
		blackBits, whiteBits = whiteBits, blackBits
	}
	return bits.OnesCount64(uint64(blackBits)), bits.OnesCount64(uint64(whiteBits))
}
