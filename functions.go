package fluent

import (
	"strconv"

	"github.com/tomaszlakomygp/fluent/culture"
)

// FunctionsFromCulture adapts a culture.Service into call-expression
// functions. defaultLocale is used when a call passes no locale of its
// own. CURRENCY and SUPPORT_NUMBER take an override from a positional
// string/keyword argument, so messages can write `{ CURRENCY() }` or
// `{ CURRENCY($userLocale) }`; MEASUREMENT and PHONE take it from a named
// `locale:` argument, since their positional argument is the value.
//
// A lookup failure resolves to None carrying the function's name, the
// same best-effort fallback every other resolution error uses.
func FunctionsFromCulture(svc culture.Service, defaultLocale string) map[string]Callable {
	locale := func(positional []Value) string {
		if len(positional) > 0 {
			switch v := positional[0].(type) {
			case String:
				return string(v)
			case Keyword:
				return string(v)
			}
		}
		return defaultLocale
	}

	return map[string]Callable{
		"CURRENCY": func(positional []Value, _ map[string]Value) Value {
			code, err := svc.CurrencyCode(locale(positional))
			if err != nil {
				return NewNone("CURRENCY()")
			}
			return String(code)
		},

		"SUPPORT_NUMBER": func(positional []Value, _ map[string]Value) Value {
			num, err := svc.SupportNumber(locale(positional))
			if err != nil {
				return NewNone("SUPPORT_NUMBER()")
			}
			return String(num)
		},

		// MEASUREMENT($value, from: "mi", kind: "distance") converts its
		// argument into the locale's preferred unit and renders
		// "<value> <unit>".
		"MEASUREMENT": func(positional []Value, named map[string]Value) Value {
			if len(positional) == 0 {
				return NewNone("MEASUREMENT()")
			}
			n := toNumber(positional[0])
			value, ok := n.float()
			if !ok {
				return NewNone("MEASUREMENT()")
			}

			fromUnit := valueString(named["from"])
			kind := valueString(named["kind"])
			loc := defaultLocale
			if l := valueString(named["locale"]); l != "" {
				loc = l
			}

			converted, unit, err := svc.ConvertMeasurement(loc, value, fromUnit, kind)
			if err != nil {
				return NewNone("MEASUREMENT()")
			}
			return String(strconv.FormatFloat(converted, 'f', -1, 64) + " " + unit)
		},

		"PHONE": func(positional []Value, named map[string]Value) Value {
			if len(positional) == 0 {
				return NewNone("PHONE()")
			}
			raw := valueString(positional[0])
			loc := defaultLocale
			if l := valueString(named["locale"]); l != "" {
				loc = l
			}
			formatted, err := svc.PhoneNumber(loc, raw)
			if err != nil {
				return NewNone("PHONE()")
			}
			return String(formatted)
		},
	}
}
