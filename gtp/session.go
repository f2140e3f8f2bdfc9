package gtp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"othello/eval"
	"othello/game"
	"othello/searcher"
)

// Session runs one protocol conversation over a duplex text stream,
// typically process stdio. It owns the game state; evals may be nil, in
// which case genmove answers "evals not loaded" and everything else keeps
// working.
type Session struct {
	in    *bufio.Scanner
	out   *bufio.Writer
	state *game.GameState
	evals *eval.Table
}

func NewSession(in io.Reader, out io.Writer, evals *eval.Table) *Session {
	return &Session{
		in:    bufio.NewScanner(in),
		out:   bufio.NewWriter(out),
		state: game.NewGameState(),
		evals: evals,
	}
}

// Run reads commands until end-of-input or quit. Protocol-level failures
// are replies, never errors; the only error out of here is a broken stream.
func (s *Session) Run() error {
	for s.in.Scan() {
		frame, ok := ParseFrame(s.in.Text())
		if !ok {
			continue
		}
		if quit := s.dispatch(frame); quit {
			break
		}
	}
	return s.in.Err()
}

// dispatch handles one frame and reports whether the session should end.
func (s *Session) dispatch(f Frame) bool {
	switch f.Verb {
	case "quit", "exit":
		s.ok(f, "")
		return true
	case "clear_board":
		s.state.Reset()
		s.ok(f, "")
	case "play":
		s.handlePlay(f)
	case "genmove":
		s.handleGenmove(f)
	case "final_score":
		s.handleFinalScore(f)
	default:
		log.Debug().Str("verb", f.Verb).Msg("unknown command")
		s.fail(f, "unknown command")
	}
	return false
}

func (s *Session) handlePlay(f Frame) {
	isBlack, ok := game.ParseColor(arg(f.Args, 0))
	if !ok {
		s.fail(f, "illegal color")
		return
	}
	sq, isPass, ok := game.ParseCoord(arg(f.Args, 1))
	if !ok {
		s.fail(f, "illegal move")
		return
	}
	if isBlack != s.state.BlackToMove {
		s.fail(f, "wrong color to play")
		return
	}
	if isPass {
		s.state.ApplyPass()
		s.ok(f, "")
		return
	}
	if !s.state.ApplyMove(sq) {
		s.fail(f, "illegal move")
		return
	}
	s.ok(f, "")
}

func (s *Session) handleGenmove(f Frame) {
	isBlack, ok := game.ParseColor(arg(f.Args, 0))
	if !ok {
		s.fail(f, "illegal color")
		return
	}
	if s.evals == nil {
		s.fail(f, "evals not loaded")
		return
	}
	if isBlack != s.state.BlackToMove {
		s.fail(f, "wrong color to play")
		return
	}

	mv, isPass := searcher.NewGreedy(s.evals).FindMove(s.state)
	if isPass {
		s.state.ApplyPass()
		s.ok(f, "PASS")
		return
	}
	s.state.ApplyMove(mv)
	s.ok(f, game.FormatCoord(mv))
}

func (s *Session) handleFinalScore(f Frame) {
	if !s.state.IsOver() {
		s.fail(f, "game not over")
		return
	}
	black, white := s.state.CountDiscs()
	switch {
	case black > white:
		s.ok(f, fmt.Sprintf("B+%d", black-white))
	case white > black:
		s.ok(f, fmt.Sprintf("W+%d", white-black))
	default:
		s.ok(f, "0")
	}
}

func (s *Session) ok(f Frame, payload string) {
	s.reply("=", f, payload)
}

func (s *Session) fail(f Frame, message string) {
	s.reply("?", f, message)
}

// reply writes one blank-line-terminated response and flushes it so piped
// callers see it immediately.
func (s *Session) reply(marker string, f Frame, payload string) {
	s.out.WriteString(marker)
	if f.HasID {
		fmt.Fprintf(s.out, " %d", f.ID)
	}
	if payload != "" {
		s.out.WriteString(" " + payload)
	}
	s.out.WriteString("\n\n")
	s.out.Flush()
}

// arg returns the i-th argument, or "" when the command line ran short, so
// handlers fail with their usual parse errors instead of special-casing
// arity.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
