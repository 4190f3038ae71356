package fluent

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatterCache memoizes one formatter per distinct options set for a
// single Context's locale. It is the context's only
// mutable, monotonically growing state, and is safe for concurrent use —
// multiple goroutines may call Context.Format concurrently as long as they
// only ever touch the cache through this type's mutex.
type formatterCache struct {
	mu      sync.Mutex
	tag     language.Tag
	printer *message.Printer
	plural  *PluralRuleSet

	cache map[string]any // canonical key -> memoized formatter
}

func newFormatterCache(locale string) *formatterCache {
	tag := language.Make(locale)
	return &formatterCache{
		tag:     tag,
		printer: message.NewPrinter(tag),
		plural:  lookupPluralRules(tag.String()),
		cache:   make(map[string]any),
	}
}

// memoizeIntlObject returns a cached formatter for (kind, optsKey),
// constructing and storing one via build on first use. The cache key
// covers the options set only, never the value being formatted — the
// memoized object is the formatter itself, applied per call.
func (c *formatterCache) memoizeIntlObject(kind, optsKey string, build func() any) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := kind + "|" + optsKey
	if v, ok := c.cache[key]; ok {
		return v
	}
	v := build()
	c.cache[key] = v
	return v
}

func numberOptionsKey(opts NumberOptions) string {
	grouping := "nil"
	if opts.UseGrouping != nil {
		grouping = strconv.FormatBool(*opts.UseGrouping)
	}
	return fmt.Sprintf("style=%s currency=%s minInt=%d minFrac=%d maxFrac=%d grouping=%s",
		opts.Style, opts.Currency, opts.MinimumIntegerDigits, opts.MinimumFractionDigits, opts.MaximumFractionDigits, grouping)
}

// FormatNumber formats a textual number per opts, using golang.org/x/text
// number/currency/message (number.Decimal + message.Printer.Sprintf,
// currency.ParseISO + currency.Symbol).
func (c *formatterCache) FormatNumber(raw string, opts NumberOptions) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}

	formatter := c.memoizeIntlObject("number", numberOptionsKey(opts), func() any {
		return c.newNumberFormatter(opts)
	})
	fn, ok := formatter.(func(float64) string)
	if !ok {
		return raw
	}
	return fn(value)
}

func (c *formatterCache) newNumberFormatter(opts NumberOptions) func(float64) string {
	var numOpts []number.Option
	if opts.MinimumFractionDigits > 0 {
		numOpts = append(numOpts, number.MinFractionDigits(opts.MinimumFractionDigits))
	}
	if opts.MaximumFractionDigits > 0 {
		numOpts = append(numOpts, number.MaxFractionDigits(opts.MaximumFractionDigits))
	}
	if opts.MinimumIntegerDigits > 0 {
		numOpts = append(numOpts, number.MinIntegerDigits(opts.MinimumIntegerDigits))
	}
	if opts.UseGrouping != nil && !*opts.UseGrouping {
		numOpts = append(numOpts, number.NoSeparator())
	}

	switch opts.Style {
	case "percent":
		return func(value float64) string {
			return c.printer.Sprintf("%v", number.Percent(value, numOpts...))
		}
	case "currency":
		code := strings.ToUpper(strings.TrimSpace(opts.Currency))
		unit, err := currency.ParseISO(code)
		if err != nil {
			return func(value float64) string {
				return c.printer.Sprintf("%v", number.Decimal(value, numOpts...))
			}
		}
		return func(value float64) string {
			return c.printer.Sprintf("%v", currency.Symbol(unit.Amount(value)))
		}
	default:
		return func(value float64) string {
			return c.printer.Sprintf("%v", number.Decimal(value, numOpts...))
		}
	}
}

func dateTimeOptionsKey(opts DateTimeOptions) string {
	hour12 := "nil"
	if opts.Hour12 != nil {
		hour12 = strconv.FormatBool(*opts.Hour12)
	}
	return fmt.Sprintf("date=%s time=%s hour12=%s", opts.DateStyle, opts.TimeStyle, hour12)
}

// FormatDateTime formats t per opts. golang.org/x/text has no CLDR-rich
// date layout API comparable to its number/currency formatters, so the
// memoized formatter maps the dateStyle/timeStyle options onto fixed Go
// time layouts instead.
func (c *formatterCache) FormatDateTime(t time.Time, opts DateTimeOptions) string {
	formatter := c.memoizeIntlObject("datetime", dateTimeOptionsKey(opts), func() any {
		return newDateTimeFormatter(opts)
	})
	fn, ok := formatter.(func(time.Time) string)
	if !ok {
		return t.Format(time.RFC3339)
	}
	return fn(t)
}

func newDateTimeFormatter(opts DateTimeOptions) func(time.Time) string {
	var layouts []string

	if opts.DateStyle != "" || opts.TimeStyle == "" {
		layouts = append(layouts, dateLayout(opts.DateStyle))
	}
	if opts.TimeStyle != "" {
		hour12 := opts.Hour12 == nil || *opts.Hour12
		layouts = append(layouts, timeLayout(opts.TimeStyle, hour12))
	}
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339}
	}

	layout := strings.Join(layouts, " ")
	return func(t time.Time) string {
		return t.Format(layout)
	}
}

func dateLayout(style string) string {
	switch style {
	case "full":
		return "Monday, January 2, 2006"
	case "long":
		return "January 2, 2006"
	case "short":
		return "1/2/06"
	default: // "medium" and unset
		return "Jan 2, 2006"
	}
}

func timeLayout(style string, hour12 bool) string {
	if hour12 {
		switch style {
		case "full", "long":
			return "3:04:05 PM MST"
		default:
			return "3:04 PM"
		}
	}
	switch style {
	case "full", "long":
		return "15:04:05 MST"
	default:
		return "15:04"
	}
}

// PluralCategory returns the CLDR cardinal category for raw in this
// cache's locale, used by Number.match against a Keyword variant key.
func (c *formatterCache) PluralCategory(raw string) string {
	if c == nil || c.plural == nil {
		return ""
	}
	return string(c.plural.Category(raw))
}
