package grammar

import (
	"math"
	"strconv"
	"strings"
)

// MaxQuantity is the largest quantity a single list entry may carry.
const MaxQuantity = math.MaxInt32

// ParseQuantity parses a positive decimal integer with no sign and no
// leading zero. Values above MaxQuantity are rejected.
func ParseQuantity(tok string) (int, bool) {
	if tok == "" || tok[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 || n > MaxQuantity {
		return 0, false
	}
	return n, true
}

// IsName reports whether tok is a single, non-empty, ASCII-alphabetic word.
func IsName(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// IsPotionName reports whether tok is one or more names separated by
// exactly one space each.
func IsPotionName(tok string) bool {
	if tok == "" {
		return false
	}
	for _, w := range strings.Split(tok, " ") {
		if !IsName(w) {
			return false
		}
	}
	return true
}
