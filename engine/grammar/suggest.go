package grammar

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// form is a sentence shape: the fixed words that open it and a usage line.
type form struct {
	lead  string
	usage string
}

var forms = []form{
	{"Geralt loots", "Geralt loots <qty> <ingredient>, <qty> <ingredient>"},
	{"Geralt trades", "Geralt trades <qty> <beast> trophy for <qty> <ingredient>"},
	{"Geralt brews", "Geralt brews <potion>"},
	{"Geralt learns", "Geralt learns <name> sign|potion is effective against <beast> | Geralt learns <potion> potion consists of <qty> <ingredient>, ..."},
	{"Geralt encounters a", "Geralt encounters a <beast>"},
	{"Total", "Total ingredient|potion|trophy [<name>] ?"},
	{"What is in", "What is in <potion> ?"},
	{"What is effective against", "What is effective against <beast> ?"},
	{"Exit", "Exit"},
}

// Suggest returns the usage line of the sentence form whose opening words
// are closest to line. It never changes how a line is classified.
func Suggest(line string) (string, bool) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return "", false
	}

	best, bestDist := -1, 0
	for i, f := range forms {
		n := len(strings.Fields(f.lead))
		if n > len(words) {
			n = len(words)
		}
		compare := strings.Join(words[:n], " ")
		if len(compare) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(compare, f.lead)
		if dist > levenshteinLimit(len(f.lead)) {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}

	if best < 0 {
		return "", false
	}
	return forms[best].usage, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 5:
		return 1
	case length <= 12:
		return 2
	default:
		return 3
	}
}
