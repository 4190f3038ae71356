package syntax

import (
	"fmt"
	"strings"

	"github.com/tomaszlakomygp/fluent/ast"
)

// Parse turns FTL source text into a name->entry mapping. Entries with a
// malformed name line are skipped and reported in the returned error
// list; well-formed entries from the same source still install. An entry
// whose placeable fails to parse is reported too, but still installs
// with that placeable dropped.
func Parse(source string) (map[string]*ast.Entry, []error) {
	entries := make(map[string]*ast.Entry)
	var errs []error

	lines := strings.Split(source, "\n")
	n := len(lines)
	i := 0
	for i < n {
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			i++
			continue
		}
		if isIndented(raw) {
			errs = append(errs, newSyntaxError(i, "unexpected indentation"))
			i++
			continue
		}

		isTerm := raw[0] == '-'
		head := raw
		if isTerm {
			head = raw[1:]
		}
		eq := strings.Index(head, "=")
		if eq < 0 || !isValidIdent(strings.TrimSpace(head[:eq])) {
			errs = append(errs, newSyntaxError(i, "expected identifier \"=\" pattern, got %q", raw))
			i++
			continue
		}

		name := strings.TrimSpace(head[:eq])
		if isTerm {
			name = "-" + name
		}

		valueLines := []string{strings.TrimSpace(head[eq+1:])}
		i++

		var attrOrder []string
		attrLines := make(map[string][]string)
		currentAttr := ""

		for i < n {
			next := lines[i]
			nextTrimmed := strings.TrimSpace(next)
			if nextTrimmed == "" {
				i++
				continue
			}
			if !isIndented(next) {
				break
			}

			if strings.HasPrefix(nextTrimmed, ".") {
				eq2 := strings.Index(nextTrimmed, "=")
				if eq2 < 0 {
					errs = append(errs, newSyntaxError(i, "malformed attribute %q", nextTrimmed))
					i++
					continue
				}
				attrName := strings.TrimSpace(nextTrimmed[1:eq2])
				if !isValidIdent(attrName) {
					errs = append(errs, newSyntaxError(i, "invalid attribute name %q", attrName))
					i++
					continue
				}
				currentAttr = attrName
				attrOrder = append(attrOrder, attrName)
				attrLines[attrName] = []string{strings.TrimSpace(nextTrimmed[eq2+1:])}
				i++
				continue
			}

			if currentAttr != "" {
				attrLines[currentAttr] = append(attrLines[currentAttr], nextTrimmed)
			} else {
				valueLines = append(valueLines, nextTrimmed)
			}
			i++
		}

		entry := &ast.Entry{}
		if valueText := strings.Join(valueLines, "\n"); strings.TrimSpace(valueText) != "" {
			pattern, perrs := parsePattern(valueText)
			entry.Value = pattern
			errs = append(errs, wrapLine(i, perrs)...)
		}
		for _, attrName := range attrOrder {
			attrText := strings.Join(attrLines[attrName], "\n")
			pattern, perrs := parsePattern(attrText)
			errs = append(errs, wrapLine(i, perrs)...)
			entry.Attributes = append(entry.Attributes, ast.Attribute{Name: attrName, Value: pattern})
		}

		entries[name] = entry
	}

	return entries, errs
}

func isIndented(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	if !isIdentStart(r[0]) {
		return false
	}
	for _, c := range r[1:] {
		if !isIdentPart(c) {
			return false
		}
	}
	return true
}

func wrapLine(line int, errs []error) []error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = fmt.Errorf("syntax: line %d: %w", line+1, err)
	}
	return out
}

func newSyntaxError(line int, format string, args ...any) error {
	return fmt.Errorf("syntax: line %d: %s", line+1, fmt.Sprintf(format, args...))
}

// parsePattern parses one pattern's text (a message/term value or a single
// attribute's value, already joined across its continuation lines) into
// literal fragments and placeable expressions.
func parsePattern(text string) (ast.Pattern, []error) {
	var errs []error
	var pattern ast.Pattern
	var literal strings.Builder

	s := newScanner(text)
	flush := func() {
		if literal.Len() > 0 {
			pattern = append(pattern, literal.String())
			literal.Reset()
		}
	}

	for !s.eof() {
		c := s.peek()
		switch {
		case c == '{':
			flush()
			s.next()
			s.skipSpace()
			expr, err := parseExpr(s)
			if err != nil {
				errs = append(errs, err)
				skipToBrace(s)
				continue
			}
			pattern = append(pattern, expr)
			s.skipSpace()
			if s.peek() == '}' {
				s.next()
			} else {
				errs = append(errs, errUnterminatedPlaceable)
			}
		case c == '\\' && (s.peekAt(1) == '{' || s.peekAt(1) == '}'):
			s.next()
			literal.WriteRune(s.next())
		default:
			literal.WriteRune(s.next())
		}
	}
	flush()
	return pattern, errs
}

func skipToBrace(s *scanner) {
	for !s.eof() && s.peek() != '}' {
		s.next()
	}
	if !s.eof() {
		s.next()
	}
}

// parseExpr parses one placeable's contents: either a variant list with no
// selector (the term "variant list" form consumed via ast.IsVariantList),
// a select expression ("EXPR -> variants"), or a bare simple expression.
func parseExpr(s *scanner) (ast.Node, error) {
	s.skipSpace()
	if s.peek() == '*' || s.peek() == '[' {
		return parseSelectExpr(s, nil)
	}

	selector, err := parseSimpleExpr(s)
	if err != nil {
		return nil, err
	}

	s.skipSpace()
	if s.peek() == '-' && s.peekAt(1) == '>' {
		s.next()
		s.next()
		return parseSelectExpr(s, selector)
	}
	return selector, nil
}

func parseSimpleExpr(s *scanner) (ast.Expr, error) {
	switch {
	case s.peek() == '"':
		str, err := s.readString()
		if err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Value: str}, nil
	case s.peek() == '$':
		s.next()
		name := s.readIdent()
		if name == "" {
			return nil, errExpectedIdent
		}
		return &ast.ExternalArg{Name: name}, nil
	case isDigit(s.peek()) || (s.peek() == '-' && isDigit(s.peekAt(1))):
		return &ast.NumberLiteral{Value: s.readNumber()}, nil
	case s.peek() == '-' || isIdentStart(s.peek()):
		name := s.readIdent()
		if name == "" {
			return nil, errExpectedIdent
		}
		return parseRefTail(s, name)
	default:
		return nil, errUnexpectedToken
	}
}

// parseRefTail handles what can follow a bare identifier or term name:
// an attribute access, a variant access, a function call, or nothing
// (a plain message/term reference).
func parseRefTail(s *scanner, name string) (ast.Expr, error) {
	switch s.peek() {
	case '.':
		s.next()
		attr := s.readIdent()
		if attr == "" {
			return nil, errExpectedIdent
		}
		return &ast.AttributeRef{Ref: name, Name: attr}, nil
	case '[':
		s.next()
		s.skipSpace()
		key, err := parseVariantKey(s)
		if err != nil {
			return nil, err
		}
		s.skipSpace()
		if s.peek() != ']' {
			return nil, errExpectedCloseBracket
		}
		s.next()
		return &ast.VariantRef{Ref: name, Key: key}, nil
	case '(':
		return parseCall(s, name)
	default:
		return &ast.MessageRef{Name: name}, nil
	}
}

func parseVariantKey(s *scanner) (ast.Node, error) {
	if isDigit(s.peek()) || (s.peek() == '-' && isDigit(s.peekAt(1))) {
		return &ast.NumberLiteral{Value: s.readNumber()}, nil
	}
	name := s.readIdent()
	if name == "" {
		return nil, errExpectedIdent
	}
	return &ast.KeywordLiteral{Name: name}, nil
}

func parseCall(s *scanner, name string) (ast.Expr, error) {
	s.next() // consume '('
	call := &ast.CallExpr{Fun: &ast.FunctionRef{Name: name}}
	s.skipSpace()

	for {
		if s.eof() {
			return nil, errUnterminatedCall
		}
		if s.peek() == ')' {
			s.next()
			return call, nil
		}

		start := s.pos
		if isIdentStart(s.peek()) {
			ident := s.readIdent()
			s.skipSpace()
			if s.peek() == ':' {
				s.next()
				s.skipSpace()
				val, err := parseSimpleExpr(s)
				if err != nil {
					return nil, err
				}
				if call.Named == nil {
					call.Named = make(map[string]ast.Expr)
				}
				call.Named[ident] = val
				call.NamedOrder = append(call.NamedOrder, ident)
				s.skipSpace()
				if s.peek() == ',' {
					s.next()
					s.skipSpace()
				}
				continue
			}
			s.pos = start
		}

		arg, err := parseSimpleExpr(s)
		if err != nil {
			return nil, err
		}
		call.Positional = append(call.Positional, arg)
		s.skipSpace()
		if s.peek() == ',' {
			s.next()
			s.skipSpace()
		}
	}
}

// parseSelectExpr parses the variants following "EXPR ->" (or, when
// selector is nil, a bare variant list), up to the placeable's closing
// brace. Per lexer.go's documented simplification, each variant's value
// runs inline on a single line rather than using FTL's indented
// continuation form.
func parseSelectExpr(s *scanner, selector ast.Expr) (*ast.SelectExpr, error) {
	sel := &ast.SelectExpr{Selector: selector, Default: -1}

	for {
		s.skipSpace()
		if s.eof() || s.peek() == '}' {
			break
		}

		isDefault := false
		if s.peek() == '*' {
			isDefault = true
			s.next()
		}
		if s.peek() != '[' {
			return nil, errExpectedVariant
		}
		s.next()
		s.skipSpace()
		key, err := parseVariantKey(s)
		if err != nil {
			return nil, err
		}
		s.skipSpace()
		if s.peek() != ']' {
			return nil, errExpectedCloseBracket
		}
		s.next()

		valueText := readVariantValue(s)
		valuePattern, _ := parsePattern(valueText)

		idx := len(sel.Variants)
		sel.Variants = append(sel.Variants, ast.Variant{Key: key, Value: valuePattern})
		if isDefault {
			sel.Default = idx
		}
	}

	if len(sel.Variants) == 0 {
		return nil, errEmptySelect
	}
	if sel.Default < 0 {
		sel.Default = len(sel.Variants) - 1
	}
	return sel, nil
}

// readVariantValue consumes a variant's value text, stopping at the next
// variant marker or the placeable's closing brace, both only recognized
// at placeable-nesting depth zero.
func readVariantValue(s *scanner) string {
	var b strings.Builder
	depth := 0
	for !s.eof() {
		c := s.peek()
		switch {
		case c == '{':
			depth++
			b.WriteRune(s.next())
		case c == '}':
			if depth == 0 {
				return strings.TrimSpace(b.String())
			}
			depth--
			b.WriteRune(s.next())
		case depth == 0 && (c == '[' || (c == '*' && s.peekAt(1) == '[')):
			return strings.TrimSpace(b.String())
		default:
			b.WriteRune(s.next())
		}
	}
	return strings.TrimSpace(b.String())
}

var (
	errUnterminatedPlaceable = stringError("unterminated placeable")
	errExpectedIdent         = stringError("expected identifier")
	errUnexpectedToken       = stringError("unexpected token")
	errExpectedCloseBracket  = stringError("expected ']'")
	errUnterminatedCall      = stringError("unterminated function call")
	errExpectedVariant       = stringError("expected '[' or '*['")
	errEmptySelect           = stringError("select expression has no variants")
)
