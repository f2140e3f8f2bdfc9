package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/eval"
	"othello/gamemaster"
	"othello/gtp"
	"othello/searcher"
)

// Tried when the configured eval path fails to load.
const fallbackEvalPath = "pattern_evaluator.dat"

func main() {
	evalPath := flag.String("eval", "data/pattern_evaluator.dat", "path to the evaluator weight table")
	selfplay := flag.Int("selfplay", 0, "play this many greedy-vs-random games and exit instead of serving the protocol")
	flag.Parse()

	// stdout carries protocol replies; all logging goes to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	evals := loadEvals(*evalPath)

	if *selfplay > 0 {
		runSelfplay(evals, *selfplay)
		return
	}

	session := gtp.NewSession(os.Stdin, os.Stdout, evals)
	if err := session.Run(); err != nil {
		log.Error().Err(err).Msg("session ended on a read error")
		os.Exit(1)
	}
}

// loadEvals tries the configured path, then the fallback. A nil table is a
// valid outcome: the session still runs, with genmove disabled.
func loadEvals(path string) *eval.Table {
	table, err := eval.Load(path)
	if err == nil {
		return table
	}
	log.Warn().Err(err).Str("path", path).Msg("eval table load failed, trying fallback")

	table, err = eval.Load(fallbackEvalPath)
	if err == nil {
		return table
	}
	log.Warn().Err(err).Str("path", fallbackEvalPath).Msg("no eval table; genmove will be unavailable")
	return nil
}

func runSelfplay(evals *eval.Table, games int) {
	if evals == nil {
		log.Fatal().Msg("selfplay needs a loaded eval table")
	}
	greedy := searcher.NewGreedy(evals)
	random := searcher.NewRandom(uint64(time.Now().UnixNano()))
	gamemaster.NewMatch(greedy, random, games).Run()
}
