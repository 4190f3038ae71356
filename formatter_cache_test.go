package fluent

import (
	"testing"
	"time"
)

func TestFormatNumberDistinctValuesSameOptions(t *testing.T) {
	cache := newFormatterCache("en-US")
	opts := NumberOptions{MinimumFractionDigits: 2}

	if got := cache.FormatNumber("1", opts); got != "1.00" {
		t.Fatalf("first = %q", got)
	}
	// Same options set, different value: the memoized formatter must be
	// applied per call, never replayed as a cached result.
	if got := cache.FormatNumber("2", opts); got != "2.00" {
		t.Fatalf("second = %q", got)
	}
}

func TestFormatNumberUnparseableFallsThrough(t *testing.T) {
	cache := newFormatterCache("en-US")
	if got := cache.FormatNumber("abc", NumberOptions{}); got != "abc" {
		t.Fatalf("got %q, want raw text back", got)
	}
}

func TestFormatNumberNoGrouping(t *testing.T) {
	cache := newFormatterCache("en-US")
	off := false
	if got := cache.FormatNumber("1234", NumberOptions{UseGrouping: &off}); got != "1234" {
		t.Fatalf("got %q, want no separators", got)
	}
}

func TestFormatDateTimeDistinctValuesSameOptions(t *testing.T) {
	cache := newFormatterCache("en-US")
	opts := DateTimeOptions{DateStyle: "short"}

	first := cache.FormatDateTime(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), opts)
	second := cache.FormatDateTime(time.Date(2027, time.June, 2, 0, 0, 0, 0, time.UTC), opts)
	if first != "5/1/26" || second != "6/2/27" {
		t.Fatalf("got (%q, %q)", first, second)
	}
}

func TestPluralCategoryLocaleFallback(t *testing.T) {
	// "en-US" has no rule set of its own; the base language's applies.
	cache := newFormatterCache("en-US")
	if got := cache.PluralCategory("1"); got != "one" {
		t.Fatalf("PluralCategory(1) = %q", got)
	}
	if got := cache.PluralCategory("2"); got != "other" {
		t.Fatalf("PluralCategory(2) = %q", got)
	}

	// Unknown locale: everything is other, reported as the empty
	// category by a nil rule set.
	unknown := newFormatterCache("xx")
	if got := unknown.PluralCategory("1"); got != "" {
		t.Fatalf("unknown locale category = %q", got)
	}
}
