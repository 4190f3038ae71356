package culture

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// FallbackResolver supplies the locale fallback chain consulted once a
// locale's own parent chain has been exhausted — e.g. mapping a dialect
// onto an unrelated locale it was configured to borrow from.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver is a FallbackResolver backed by an explicit,
// caller-populated locale->fallbacks table.
type StaticFallbackResolver struct {
	mu        sync.RWMutex
	fallbacks map[string][]string
}

// NewStaticFallbackResolver returns an empty resolver ready for Set calls.
func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{fallbacks: make(map[string][]string)}
}

// Set replaces locale's fallback chain, most-preferred first.
func (r *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallbacks[normalizeLocale(locale)] = append([]string(nil), fallbacks...)
}

// Resolve returns locale's configured fallback chain, or nil if none was set.
func (r *StaticFallbackResolver) Resolve(locale string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.fallbacks[normalizeLocale(locale)]...)
}

// normalizeLocale trims a locale identifier and swaps underscores for the
// hyphens BCP-47 expects.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// parentTag returns the immediate parent of locale: the CLDR parent when
// golang.org/x/text knows the tag, otherwise the tag with its last
// subtag cut off.
func parentTag(locale string) string {
	if locale == "" {
		return ""
	}

	if tag, err := language.Parse(locale); err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		if value := parent.String(); value != "" && value != "und" {
			return value
		}
		return ""
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}

// parentChain walks parentTag to the root, e.g. "es-MX" -> ["es-419", "es"].
func parentChain(locale string) []string {
	var chain []string
	seen := make(map[string]struct{}, 4)
	for current := parentTag(locale); current != ""; current = parentTag(current) {
		if _, dup := seen[current]; dup {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}
	return chain
}
