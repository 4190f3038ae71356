// Package culture carries locale-keyed business data — currency codes,
// support contact numbers, measurement preferences, phone dial plans —
// that Fluent messages reach through call expressions (see
// fluent.FunctionsFromCulture). Lookups walk the locale's parent chain and
// any configured fallback locales before giving up.
package culture

import "fmt"

// Data is the raw locale-keyed table a Service answers from. Keys are
// BCP-47 locale tags; the special key "default" matches any locale.
type Data struct {
	CurrencyCodes  map[string]string           `json:"currency_codes"`
	SupportNumbers map[string]string           `json:"support_numbers"`
	Measurements   map[string]MeasurementPrefs `json:"measurement_preferences"`
	DialPlans      map[string]DialPlan         `json:"dial_plans"`
}

// MeasurementPrefs holds a locale's preferred unit per measurement kind.
type MeasurementPrefs struct {
	Weight   UnitPreference `json:"weight"`
	Distance UnitPreference `json:"distance"`
	Volume   UnitPreference `json:"volume"`
}

// UnitPreference names a preferred unit and the conversion factors from
// other units into it.
type UnitPreference struct {
	Unit           string             `json:"unit"`
	ConversionFrom map[string]float64 `json:"conversion_from,omitempty"`
}

// Service answers locale-sensitive business-data queries. Missing data is
// an error, not a panic; callers decide their own fallback rendering.
type Service interface {
	// CurrencyCode returns the ISO 4217 currency code for locale.
	CurrencyCode(locale string) (string, error)

	// SupportNumber returns the support contact number for locale.
	SupportNumber(locale string) (string, error)

	// MeasurementPreference returns the preferred unit for kind
	// ("weight", "distance", "volume") in locale.
	MeasurementPreference(locale, kind string) (UnitPreference, error)

	// ConvertMeasurement converts value from fromUnit into locale's
	// preferred unit for kind, returning the converted value and its unit.
	ConvertMeasurement(locale string, value float64, fromUnit, kind string) (float64, string, error)

	// PhoneNumber formats a raw phone number for locale, preferring a
	// registered PhoneFormatterFunc over the locale's dial plan.
	PhoneNumber(locale, raw string) (string, error)
}

type service struct {
	data     *Data
	resolver FallbackResolver
}

// NewService builds a Service over data. resolver may be nil, in which
// case only the locale itself, its parent chain, and the "default" key are
// consulted.
func NewService(data *Data, resolver FallbackResolver) Service {
	if data == nil {
		data = &Data{}
	}
	return &service{data: data, resolver: resolver}
}

func (s *service) CurrencyCode(locale string) (string, error) {
	for _, candidate := range s.candidates(locale) {
		if code, ok := s.data.CurrencyCodes[candidate]; ok {
			return code, nil
		}
	}
	return "", fmt.Errorf("culture: no currency code for locale %q", locale)
}

func (s *service) SupportNumber(locale string) (string, error) {
	for _, candidate := range s.candidates(locale) {
		if num, ok := s.data.SupportNumbers[candidate]; ok {
			return num, nil
		}
	}
	return "", fmt.Errorf("culture: no support number for locale %q", locale)
}

func (s *service) MeasurementPreference(locale, kind string) (UnitPreference, error) {
	if len(s.data.Measurements) == 0 {
		return UnitPreference{}, fmt.Errorf("culture: no measurement preferences configured")
	}

	for _, candidate := range s.candidates(locale) {
		prefs, ok := s.data.Measurements[candidate]
		if !ok {
			continue
		}
		if pref, ok := prefs.preference(kind); ok {
			return pref, nil
		}
	}
	return UnitPreference{}, fmt.Errorf("culture: no %s preference for locale %q", kind, locale)
}

func (p MeasurementPrefs) preference(kind string) (UnitPreference, bool) {
	var pref UnitPreference
	switch kind {
	case "weight":
		pref = p.Weight
	case "distance":
		pref = p.Distance
	case "volume":
		pref = p.Volume
	}
	return pref, pref.Unit != ""
}

func (s *service) ConvertMeasurement(locale string, value float64, fromUnit, kind string) (float64, string, error) {
	pref, err := s.MeasurementPreference(locale, kind)
	if err != nil {
		return value, fromUnit, err
	}

	if pref.Unit == fromUnit {
		return value, fromUnit, nil
	}
	if factor, ok := pref.ConversionFrom[fromUnit]; ok {
		return value * factor, pref.Unit, nil
	}
	return value, fromUnit, fmt.Errorf("culture: no conversion from %q to %q", fromUnit, pref.Unit)
}

// candidates lists the lookup keys for locale, most specific first: the
// locale itself, its parent chain, each configured fallback with its own
// parents, and finally the "default" key.
func (s *service) candidates(locale string) []string {
	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)

	add := func(key string) {
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	locale = normalizeLocale(locale)
	add(locale)
	for _, parent := range parentChain(locale) {
		add(parent)
	}
	if s.resolver != nil {
		for _, fb := range s.resolver.Resolve(locale) {
			fb = normalizeLocale(fb)
			add(fb)
			for _, parent := range parentChain(fb) {
				add(parent)
			}
		}
	}
	add("default")

	return out
}
