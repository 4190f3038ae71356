package fluent

import (
	"strconv"
	"strings"
	"time"
)

// Value is the closed family of runtime values the resolver ever produces.
// Only types in this package implement it (the ones in this file plus the
// resolver's internal callable wrapper) — valueOf/match are unexported so
// the set cannot grow outside the package.
type Value interface {
	valueOf(ctx *Context) string
	match(ctx *Context, key Value) bool
}

// String is the fast-path raw string value: literal pattern fragments and
// keyword unwraps both resolve to it without allocating a richer wrapper.
type String string

func (s String) valueOf(*Context) string { return string(s) }

func (s String) match(_ *Context, key Value) bool {
	if k, ok := key.(Keyword); ok {
		return string(s) == string(k)
	}
	return false
}

// NumberOptions carries the subset of Fluent's NUMBER() formatting options
// the formatter cache understands.
type NumberOptions struct {
	Style                 string // "decimal" (default), "percent", "currency"
	Currency              string
	MinimumIntegerDigits  int
	MinimumFractionDigits int
	MaximumFractionDigits int
	UseGrouping           *bool
}

// Number is a numeric value that retains its original textual form so
// format options can be merged without requiring arithmetic.
type Number struct {
	Raw     string
	Options NumberOptions
}

// NewNumber wraps a textual number with default options.
func NewNumber(raw string) Number { return Number{Raw: raw} }

func (n Number) valueOf(ctx *Context) string {
	if ctx == nil {
		return n.Raw
	}
	return ctx.formatters().FormatNumber(n.Raw, n.Options)
}

func (n Number) float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(n.Raw), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (n Number) match(ctx *Context, key Value) bool {
	switch k := key.(type) {
	case Number:
		if nf, ok := n.float(); ok {
			if kf, ok := k.float(); ok {
				return nf == kf
			}
		}
		return strings.TrimSpace(n.Raw) == strings.TrimSpace(k.Raw)
	case Keyword:
		if ctx != nil {
			if category := ctx.formatters().PluralCategory(n.Raw); category != "" && category == string(k) {
				return true
			}
		}
		return n.Raw == string(k)
	default:
		return false
	}
}

// DateTimeOptions carries the subset of Fluent's DATETIME() options the
// formatter cache understands.
type DateTimeOptions struct {
	DateStyle string // "full", "long", "medium", "short"
	TimeStyle string
	Hour12    *bool
}

// DateTime is a wall-clock instant with optional formatting options.
type DateTime struct {
	Instant time.Time
	Options DateTimeOptions
}

func (d DateTime) valueOf(ctx *Context) string {
	if ctx == nil {
		return d.Instant.Format(time.RFC3339)
	}
	return ctx.formatters().FormatDateTime(d.Instant, d.Options)
}

func (DateTime) match(*Context, Value) bool { return false }

// Keyword is an identifier-typed value used to match variant keys.
type Keyword string

func (k Keyword) valueOf(*Context) string { return string(k) }

func (k Keyword) match(_ *Context, key Value) bool {
	if other, ok := key.(Keyword); ok {
		return string(k) == string(other)
	}
	return false
}

// None is the "no value" sentinel. It stringifies to its hint, or "???"
// when no hint was recorded, and never causes a consumer to fail.
type None struct {
	Hint string
}

// NewNone builds a None sentinel, typically carrying the missing name.
func NewNone(hint string) None { return None{Hint: hint} }

func (n None) valueOf(*Context) string {
	if n.Hint != "" {
		return n.Hint
	}
	return "???"
}

func (None) match(*Context, Value) bool { return false }

// Parts is an intermediate, un-joined sequence produced by resolving a
// nested pattern. Callers flatten it into a parent pattern instead of
// joining it twice.
type Parts struct {
	Values []Value
}

func (p Parts) valueOf(ctx *Context) string {
	var b strings.Builder
	for _, v := range p.Values {
		b.WriteString(v.valueOf(ctx))
	}
	return b.String()
}

func (Parts) match(*Context, Value) bool { return false }

// length returns the flattened character count used against
// MaxPlaceableLength.
func (p Parts) length(ctx *Context) int {
	n := 0
	for _, v := range p.Values {
		n += len([]rune(v.valueOf(ctx)))
	}
	return n
}
