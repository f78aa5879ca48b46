package lexer

import (
	"fmt"
	"strings"
)

// scanner is a cursor over one input line. Every sentence family is lexed
// by composing its methods; a family that needs to back out of a partial
// match copies the scanner and discards the copy.
type scanner struct {
	src string
	pos int
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isBreak reports whether c ends a list token.
func isBreak(c byte) bool {
	return isSpace(c) || c == ',' || c == '?'
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek(c byte) bool {
	return !s.eof() && s.src[s.pos] == c
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// atKeyword reports whether kw starts at the cursor as a whole word.
func (s *scanner) atKeyword(kw string) bool {
	if !strings.HasPrefix(s.src[s.pos:], kw) {
		return false
	}
	end := s.pos + len(kw)
	return end == len(s.src) || isSpace(s.src[end])
}

// keyword consumes kw and the whitespace after it. The cursor does not
// move when kw is not at the cursor.
func (s *scanner) keyword(kw string) bool {
	if !s.atKeyword(kw) {
		return false
	}
	s.pos += len(kw)
	s.skipSpace()
	return true
}

// keywords consumes every keyword in order, or none of them.
func (s *scanner) keywords(kws ...string) bool {
	mark := s.pos
	for _, kw := range kws {
		if !s.keyword(kw) {
			s.pos = mark
			return false
		}
	}
	return true
}

// word reads up to the next whitespace or stop byte.
func (s *scanner) word(stop byte) string {
	start := s.pos
	for !s.eof() && !isSpace(s.src[s.pos]) && s.src[s.pos] != stop {
		s.pos++
	}
	return s.src[start:s.pos]
}

// until reads a span up to stop, exclusive, without trailing whitespace.
// The cursor is left on stop. found is false if the line ends first.
func (s *scanner) until(stop byte) (span string, found bool) {
	start := s.pos
	idx := strings.IndexByte(s.src[s.pos:], stop)
	if idx < 0 {
		s.pos = len(s.src)
	} else {
		s.pos += idx
		found = true
	}
	return strings.TrimRight(s.src[start:s.pos], " \t\n\v\f\r"), found
}

// rest reads everything left on the line.
func (s *scanner) rest() string {
	span := s.src[s.pos:]
	s.pos = len(s.src)
	return strings.TrimRight(span, " \t\n\v\f\r")
}

// list splits the remainder on whitespace with "," and "?" as tokens of
// their own. A comma glued to the next word is a spacing error.
func (s *scanner) list() ([]string, error) {
	var toks []string
	for {
		s.skipSpace()
		if s.eof() {
			return toks, nil
		}
		switch c := s.src[s.pos]; c {
		case ',':
			if s.pos+1 < len(s.src) && !isSpace(s.src[s.pos+1]) {
				return nil, fmt.Errorf("%w at column %d", ErrCommaSpacing, s.pos+1)
			}
			toks = append(toks, ",")
			s.pos++
		case '?':
			toks = append(toks, "?")
			s.pos++
		default:
			start := s.pos
			for !s.eof() && !isBreak(s.src[s.pos]) {
				s.pos++
			}
			toks = append(toks, s.src[start:s.pos])
		}
	}
}

// question reads a subject span closed by "?" and lexes whatever follows
// the mark so validators can reject trailing junk.
func (s *scanner) question(toks []string) ([]string, error) {
	subject, found := s.until('?')
	if !found {
		return nil, fmt.Errorf("%w: expected ?", ErrUnterminated)
	}
	s.pos++
	toks = append(toks, subject, "?")
	tail, err := s.list()
	if err != nil {
		return nil, err
	}
	return append(toks, tail...), nil
}
