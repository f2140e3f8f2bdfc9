// Package gtp implements the engine's text protocol: GTP-style framing with
// optional numeric request ids, = / ? replies, blank-line terminators.
package gtp

import (
	"strconv"
	"strings"
)

// Frame is one parsed command line. Args hold whatever followed the verb,
// still in their original case; verbs are folded to lowercase for matching.
type Frame struct {
	ID    int
	HasID bool
	Verb  string
	Args  []string
}

// ParseFrame splits a line into id, verb and arguments. The id is the first
// token when it is all decimal digits; the verb is the next token. ok is
// false for lines with no verb (blank, or a bare id), which are ignored
// without a reply.
func ParseFrame(line string) (Frame, bool) {
	tokens := strings.Fields(line)

	var f Frame
	if len(tokens) > 0 && isDigits(tokens[0]) {
		if id, err := strconv.Atoi(tokens[0]); err == nil {
			f.ID = id
			f.HasID = true
			tokens = tokens[1:]
		}
	}
	if len(tokens) == 0 {
		return Frame{}, false
	}
	f.Verb = strings.ToLower(tokens[0])
	f.Args = tokens[1:]
	return f, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
