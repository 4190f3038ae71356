// Package syntax parses Fluent Translation List source into the
// ast.Entry tree the resolver consumes. It covers the commonly used core
// of the FTL grammar: messages, terms, attributes, placeables with
// literals, references, select expressions, variant lists, and function
// calls. Variant patterns are parsed inline rather than through FTL's
// multi-line indented continuation form.
package syntax

import "strings"

// scanner is a minimal rune cursor shared by the expression parser. It
// has no notion of the FTL grammar itself — that lives in parser.go.
type scanner struct {
	src []rune
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{src: []rune(s)}
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(offset int) rune {
	idx := s.pos + offset
	if idx < 0 || idx >= len(s.src) {
		return 0
	}
	return s.src[idx]
}

func (s *scanner) next() rune {
	r := s.peek()
	s.pos++
	return r
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r) || r == '_' || r == '-'
}

// readIdent reads an identifier, allowing a single leading '-' (term
// references, e.g. "-brand").
func (s *scanner) readIdent() string {
	start := s.pos
	if s.peek() == '-' {
		s.pos++
	}
	for !s.eof() && isIdentPart(s.peek()) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

// readNumber reads a (possibly negative, possibly fractional) decimal
// literal, preserving its textual form.
func (s *scanner) readNumber() string {
	start := s.pos
	if s.peek() == '-' {
		s.pos++
	}
	for !s.eof() && isDigit(s.peek()) {
		s.pos++
	}
	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.pos++
		for !s.eof() && isDigit(s.peek()) {
			s.pos++
		}
	}
	return string(s.src[start:s.pos])
}

// readString consumes a double-quoted string literal, with the cursor
// positioned on the opening quote, and returns its unescaped contents.
func (s *scanner) readString() (string, error) {
	s.pos++ // opening quote
	var b strings.Builder
	for !s.eof() && s.peek() != '"' {
		c := s.next()
		if c == '\\' && !s.eof() {
			c = s.next()
		}
		b.WriteRune(c)
	}
	if s.eof() {
		return "", errUnterminatedString
	}
	s.pos++ // closing quote
	return b.String(), nil
}

var errUnterminatedString = stringError("unterminated string literal")

type stringError string

func (e stringError) Error() string { return string(e) }
