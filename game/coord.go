package game

import "strings"

// Square indexes a board cell: a1 = 0, b1 = 1, ... h8 = 63
// (index = rank*8 + file).
type Square int

// ParseColor accepts b/black/w/white, case-insensitively.
func ParseColor(s string) (isBlack bool, ok bool) {
	switch strings.ToLower(s) {
	case "b", "black":
		return true, true
	case "w", "white":
		return false, true
	}
	return false, false
}

// ParseCoord accepts "pass" (any case) or a two-character coordinate in
// [a-h][1-8]. The token must already be isolated; no trimming happens here.
func ParseCoord(s string) (sq Square, isPass bool, ok bool) {
	if strings.EqualFold(s, "pass") {
		return 0, true, true
	}
	if len(s) != 2 {
		return 0, false, false
	}
	file := s[0] | 0x20 // fold A-H to a-h
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false, false
	}
	return Square(rank-'1')*8 + Square(file-'a'), false, true
}

// FormatCoord is the inverse of ParseCoord for real squares; it is not
// defined for pass (callers write "PASS" themselves).
func FormatCoord(sq Square) string {
	return string([]byte{byte('a' + sq%8), byte('1' + sq/8)})
}
