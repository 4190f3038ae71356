// Package libphonenumber plugs github.com/nyaruka/phonenumbers into the
// culture package's phone formatter registry. Importing it is not enough;
// call Register for each locale that should use libphonenumber instead of
// the built-in dial-plan rendering.
package libphonenumber

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/tomaszlakomygp/fluent/culture"
	"golang.org/x/text/language"
)

type config struct {
	region string
	format phonenumbers.PhoneNumberFormat
}

// Option adjusts how a registered locale parses and renders numbers.
type Option func(*config)

// WithRegion pins parsing to an ISO 3166-1 alpha-2 country code instead of
// deriving one from the locale tag.
func WithRegion(region string) Option {
	return func(c *config) {
		c.region = strings.ToUpper(strings.TrimSpace(region))
	}
}

// WithFormat selects the phonenumbers output format. The default is
// INTERNATIONAL.
func WithFormat(format phonenumbers.PhoneNumberFormat) Option {
	return func(c *config) {
		c.format = format
	}
}

// Register installs a libphonenumber-backed formatter for each locale.
func Register(locales []string, opts ...Option) {
	for _, locale := range locales {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			continue
		}

		cfg := config{format: phonenumbers.INTERNATIONAL}
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg)
			}
		}

		culture.RegisterPhoneFormatter(locale, formatter(locale, cfg))
	}
}

func formatter(registeredLocale string, cfg config) culture.PhoneFormatterFunc {
	return func(locale, raw string) string {
		value := strings.TrimSpace(raw)
		if value == "" {
			return value
		}

		number, err := phonenumbers.Parse(value, callingRegion(locale, registeredLocale, cfg.region))
		if err != nil {
			return value
		}
		if !phonenumbers.IsPossibleNumber(number) && !phonenumbers.IsValidNumber(number) {
			return value
		}

		if formatted := phonenumbers.Format(number, cfg.format); formatted != "" {
			return formatted
		}
		return value
	}
}

// callingRegion picks the parse region: an explicit WithRegion value, a
// region subtag on either locale, or the country code of a default dial
// plan mapped back through libphonenumber's own region table.
func callingRegion(requestedLocale, registeredLocale, explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, locale := range []string{requestedLocale, registeredLocale} {
		if region := regionOf(locale); region != "" {
			return region
		}
	}
	for _, locale := range []string{requestedLocale, registeredLocale} {
		if plan, ok := culture.DefaultDialPlan(locale); ok {
			if code, err := strconv.Atoi(plan.CountryCode); err == nil && code > 0 {
				if region := phonenumbers.GetRegionCodeForCountryCode(code); region != "" {
					return strings.ToUpper(region)
				}
			}
		}
	}
	return ""
}

func regionOf(locale string) string {
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return ""
	}
	region, conf := tag.Region()
	if conf != language.Exact {
		// Inferred regions (e.g. "en" -> US) are guesses; only trust a
		// region subtag the caller actually wrote.
		return ""
	}
	return strings.ToUpper(region.String())
}
