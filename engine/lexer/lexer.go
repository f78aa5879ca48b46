// Package lexer turns a trimmed command line into tokens.
// Lexing is context-sensitive: the leading keyword picks a sentence family,
// and each family decides which spans stay whole (potion names, subjects of
// questions) and which are split into list tokens.
package lexer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCommaSpacing marks a "," with no whitespace before the next word.
	ErrCommaSpacing = errors.New("no space after comma")
	// ErrUnterminated marks a question with no closing "?".
	ErrUnterminated = errors.New("unterminated question")
	// ErrUnknownForm marks a family keyword followed by an unknown clause.
	ErrUnknownForm = errors.New("unknown sentence form")
)

// Lex splits line into tokens. Words, "," and "?" are tokens; in family
// specific positions a multi-word span is a single token.
func Lex(line string) ([]string, error) {
	s := &scanner{src: line}
	s.skipSpace()

	switch {
	case s.atKeyword("What"):
		return lexWhat(s)
	case s.atKeyword("Total"):
		return lexTotal(s)
	case s.atKeyword("Geralt"):
		return lexGeralt(s)
	}

	// No family: plain list tokens, so validators can still look and reject.
	return s.list()
}

// lexWhat handles "What is in <potion> ?" and
// "What is effective against <beast> ?".
func lexWhat(s *scanner) ([]string, error) {
	s.keyword("What")
	switch {
	case s.keywords("is", "in"):
		return s.question([]string{"What", "is", "in"})
	case s.keywords("is", "effective", "against"):
		return s.question([]string{"What", "is", "effective", "against"})
	}
	return nil, fmt.Errorf("%w: What at column %d", ErrUnknownForm, s.pos+1)
}

// lexTotal handles "Total <category> ?" and "Total <category> <name> ?".
func lexTotal(s *scanner) ([]string, error) {
	s.keyword("Total")
	toks := []string{"Total", s.word('?')}
	s.skipSpace()

	if s.eof() {
		return nil, fmt.Errorf("%w: expected ?", ErrUnterminated)
	}
	if s.peek('?') {
		s.pos++
		tail, err := s.list()
		if err != nil {
			return nil, err
		}
		return append(append(toks, "?"), tail...), nil
	}
	return s.question(toks)
}

// lexGeralt handles the action and knowledge sentences. Only brews and
// learns carry multi-word spans; everything else is a plain list.
func lexGeralt(s *scanner) ([]string, error) {
	s.keyword("Geralt")

	switch {
	case s.keyword("brews"):
		toks := []string{"Geralt", "brews"}
		if name := s.rest(); name != "" {
			toks = append(toks, name)
		}
		return toks, nil
	case s.keyword("learns"):
		return lexLearn(s)
	}

	s.pos = 0
	return s.list()
}

// lexLearn finds where the learned name ends. Every "sign" or "potion"
// word is a candidate terminator; candidates are tried left to right and
// the first one whose tail lexes wins.
func lexLearn(s *scanner) ([]string, error) {
	start := s.pos
	probe := *s

	for !probe.eof() {
		wordStart := probe.pos
		w := probe.word(' ')
		probe.skipSpace()
		if w != "sign" && w != "potion" {
			continue
		}

		name := strings.TrimRight(s.src[start:wordStart], " \t\n\v\f\r")
		if name == "" {
			continue
		}

		tail := probe
		rest, ok, err := learnTail(&tail, w)
		if err != nil {
			return nil, err
		}
		if ok {
			return append([]string{"Geralt", "learns", name, w}, rest...), nil
		}
	}

	return nil, fmt.Errorf("%w: learns without a sign or potion clause", ErrUnknownForm)
}

func learnTail(s *scanner, kind string) ([]string, bool, error) {
	if s.keywords("is", "effective", "against") {
		beast := s.rest()
		if beast == "" {
			return nil, false, nil
		}
		return []string{"is", "effective", "against", beast}, true, nil
	}

	if kind == "potion" && s.keywords("consists", "of") {
		items, err := s.list()
		if err != nil {
			return nil, false, err
		}
		return append([]string{"consists", "of"}, items...), true, nil
	}

	return nil, false, nil
}
