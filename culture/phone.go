package culture

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DialPlan describes how to render phone numbers for a locale.
// CountryCode holds digits without the leading plus sign. NationalPrefix,
// when present, is stripped from nationally formatted input. Groups
// defines the digit grouping of the national significant number.
type DialPlan struct {
	CountryCode    string `json:"country_code"`
	NationalPrefix string `json:"national_prefix,omitempty"`
	Groups         []int  `json:"groups,omitempty"`
}

// Format renders raw in the +<country> <groups...> international form.
// Input it cannot make sense of comes back unchanged.
func (p DialPlan) Format(raw string) string {
	digits := digitsOf(raw)
	if digits == "" || p.CountryCode == "" {
		return raw
	}

	national := digits
	if strings.HasPrefix(strings.TrimSpace(raw), "+") {
		if !strings.HasPrefix(digits, p.CountryCode) {
			return raw
		}
		national = digits[len(p.CountryCode):]
	} else if p.NationalPrefix != "" && strings.HasPrefix(national, p.NationalPrefix) {
		national = national[len(p.NationalPrefix):]
	}
	if national == "" {
		return raw
	}

	parts := []string{"+" + p.CountryCode}
	rest := national
	for _, size := range p.Groups {
		if size <= 0 || rest == "" {
			continue
		}
		if size >= len(rest) {
			parts = append(parts, rest)
			rest = ""
			break
		}
		parts = append(parts, rest[:size])
		rest = rest[size:]
	}
	if rest != "" {
		parts = append(parts, rest)
	}
	return strings.Join(parts, " ")
}

func digitsOf(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneFormatterFunc formats a raw phone number string for a locale.
// External adapters (modules/libphonenumber) register these to take over
// from the built-in dial-plan rendering.
type PhoneFormatterFunc func(locale, raw string) string

var phoneRegistry = struct {
	mu         sync.RWMutex
	formatters map[string]PhoneFormatterFunc
}{formatters: make(map[string]PhoneFormatterFunc)}

// RegisterPhoneFormatter installs a custom phone formatter for locale,
// replacing any previous registration.
func RegisterPhoneFormatter(locale string, fn PhoneFormatterFunc) {
	key := strings.ToLower(normalizeLocale(locale))
	if key == "" || fn == nil {
		return
	}
	phoneRegistry.mu.Lock()
	phoneRegistry.formatters[key] = fn
	phoneRegistry.mu.Unlock()
}

// lookupPhoneFormatter finds a registered formatter for locale, trying the
// exact tag first and then its base language.
func lookupPhoneFormatter(locale string) (PhoneFormatterFunc, bool) {
	key := strings.ToLower(normalizeLocale(locale))
	phoneRegistry.mu.RLock()
	defer phoneRegistry.mu.RUnlock()

	if fn, ok := phoneRegistry.formatters[key]; ok {
		return fn, true
	}
	base, _ := language.Make(key).Base()
	if fn, ok := phoneRegistry.formatters[base.String()]; ok {
		return fn, true
	}
	return nil, false
}

var defaultDialPlans struct {
	once  sync.Once
	plans map[string]DialPlan
}

// DefaultDialPlan returns the embedded-defaults dial plan for locale,
// trying the exact tag and then its base language. Adapters use it to
// recover a calling region when the locale tag itself carries none.
func DefaultDialPlan(locale string) (DialPlan, bool) {
	defaultDialPlans.once.Do(func() {
		data, err := DefaultData()
		if err != nil || data.DialPlans == nil {
			defaultDialPlans.plans = map[string]DialPlan{}
			return
		}
		defaultDialPlans.plans = data.DialPlans
	})

	key := normalizeLocale(locale)
	if plan, ok := defaultDialPlans.plans[key]; ok {
		return plan, true
	}
	base, _ := language.Make(key).Base()
	if plan, ok := defaultDialPlans.plans[base.String()]; ok {
		return plan, true
	}
	return DialPlan{}, false
}

// PhoneNumber formats raw for locale: a registered formatter wins,
// otherwise the locale's dial plan renders it.
func (s *service) PhoneNumber(locale, raw string) (string, error) {
	if fn, ok := lookupPhoneFormatter(locale); ok {
		return fn(normalizeLocale(locale), raw), nil
	}
	for _, candidate := range s.candidates(locale) {
		if plan, ok := s.data.DialPlans[candidate]; ok {
			return plan.Format(raw), nil
		}
	}
	return "", fmt.Errorf("culture: no phone formatting for locale %q", locale)
}
