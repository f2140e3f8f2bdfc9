package game

// Wrap masks: squares that may shift one file east/west without leaving
// the board.
const (
	notFileA BitPattern = 0xfefefefefefefefe
	notFileH BitPattern = 0x7f7f7f7f7f7f7f7f
)

// The eight ray directions as shift functions. Vertical shifts cannot wrap;
// anything with an east/west component masks the edge file first.
var directions = [8]func(BitPattern) BitPattern{
	func(b BitPattern) BitPattern { return b << 8 },                // north
	func(b BitPattern) BitPattern { return b >> 8 },                // south
	func(b BitPattern) BitPattern { return (b & notFileH) << 1 },   // east
	func(b BitPattern) BitPattern { return (b & notFileA) >> 1 },   // west
	func(b BitPattern) BitPattern { return (b & notFileH) << 9 },   // north-east
	func(b BitPattern) BitPattern { return (b & notFileA) << 7 },   // north-west
	func(b BitPattern) BitPattern { return (b & notFileH) >> 7 },   // south-east
	func(b BitPattern) BitPattern { return (b & notFileA) >> 9 },   // south-west
}

// GetMoves returns the set of legal destination squares for the side whose
// discs are in player.
func GetMoves(player, opponent BitPattern) BitPattern {
	empty := ^(player | opponent)
	var moves BitPattern
	for _, shift := range directions {
		// Propagate along runs of opponent discs; a run of length up to 6
		// can sit between the mover's disc and the landing square.
		x := shift(player) & opponent
		for i := 0; i < 5; i++ {
			x |= shift(x) & opponent
		}
		moves |= shift(x) & empty
	}
	return moves
}

// GetFlip returns the discs flipped by playing sq, including sq itself.
// The result is undefined when sq is not a legal move for player.
func GetFlip(sq Square, player, opponent BitPattern) BitPattern {
	mv := BitPattern(1) << uint(sq)
	flip := mv
	for _, shift := range directions {
		x := shift(mv) & opponent
		for i := 0; i < 5; i++ {
			x |= shift(x) & opponent
		}
		if shift(x)&player != 0 {
			flip |= x
		}
	}
	return flip
}

// NewPlayer returns the next mover's discs after applying flip: the old
// opponent minus whatever flipped.
func NewPlayer(flip, opponent BitPattern) BitPattern {
	return opponent &^ flip
}

// NewOpponent returns the next opponent's discs: the old mover plus the
// flip set (which carries the played square).
func NewOpponent(flip, player BitPattern) BitPattern {
	return player | flip
}

// IsGameOver reports whether the board is full or neither side has a legal
// move.
func IsGameOver(b Board) bool {
	if b.full() {
		return true
	}
	return GetMoves(b.player, b.opponent) == 0 && GetMoves(b.opponent, b.player) == 0
}
