// Package gamemaster plays complete games between in-process agents and
// tallies the results, the same bookkeeping the external match scripts do
// when they drive two engines over pipes.
package gamemaster

import (
	"github.com/rs/zerolog/log"

	"othello/game"
	"othello/searcher"
)

// An Othello game cannot exceed 60 placements; the cap only guards against
// a misbehaving agent that passes forever.
const maxPlies = 200

// Stats accumulates match results from the first agent's point of view.
type Stats struct {
	Games       int
	Wins        int
	Losses      int
	Draws       int
	DiscDiffSum int // sum of (first agent discs - second agent discs)

	AsBlackWins, AsBlackLosses, AsBlackDraws int
	AsWhiteWins, AsWhiteLosses, AsWhiteDraws int
}

// WinRate counts a draw as half a win.
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Games)
}

// Match pits two agents against each other for a fixed number of games,
// alternating who takes black.
type Match struct {
	first  searcher.Agent
	second searcher.Agent
	games  int
}

func NewMatch(first, second searcher.Agent, games int) *Match {
	if games < 1 {
		panic("a match needs at least one game")
	}
	return &Match{first: first, second: second, games: games}
}

// Run plays the full match and returns the tally.
func (m *Match) Run() Stats {
	var stats Stats
	for i := 0; i < m.games; i++ {
		firstIsBlack := i%2 == 0

		black, white := m.first, m.second
		if !firstIsBlack {
			black, white = m.second, m.first
		}

		blackDiscs, whiteDiscs := playGame(black, white)
		diff := blackDiscs - whiteDiscs
		if !firstIsBlack {
			diff = -diff
		}
		stats.record(firstIsBlack, diff)

		log.Debug().
			Int("game", i+1).
			Bool("first_is_black", firstIsBlack).
			Int("disc_diff", diff).
			Msg("game finished")
	}

	log.Info().
		Int("games", stats.Games).
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Int("draws", stats.Draws).
		Float64("win_rate", stats.WinRate()).
		Int("disc_diff_sum", stats.DiscDiffSum).
		Msg("match finished")
	return stats
}

func (s *Stats) record(firstIsBlack bool, diff int) {
	s.Games++
	s.DiscDiffSum += diff
	switch {
	case diff > 0:
		s.Wins++
		if firstIsBlack {
			s.AsBlackWins++
		} else {
			s.AsWhiteWins++
		}
	case diff < 0:
		s.Losses++
		if firstIsBlack {
			s.AsBlackLosses++
		} else {
			s.AsWhiteLosses++
		}
	default:
		s.Draws++
		if firstIsBlack {
			s.AsBlackDraws++
		} else {
			s.AsWhiteDraws++
		}
	}
}

// playGame runs one game to the end and returns absolute disc counts.
func playGame(black, white searcher.Agent) (blackDiscs, whiteDiscs int) {
	gs := game.NewGameState()
	for plies := 0; !gs.IsOver() && plies < maxPlies; plies++ {
		mover := white
		if gs.BlackToMove {
			mover = black
		}

		mv, isPass := mover.FindMove(gs)
		if isPass {
			gs.ApplyPass()
			continue
		}
		if !gs.ApplyMove(mv) {
			panic("agent returned an illegal move: " + game.FormatCoord(mv))
		}
	}
	return gs.CountDiscs()
}
