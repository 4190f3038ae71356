package culture

import (
	"math"
	"testing"
)

func testData() *Data {
	return &Data{
		CurrencyCodes: map[string]string{
			"default": "USD",
			"en-GB":   "GBP",
			"es":      "EUR",
		},
		SupportNumbers: map[string]string{
			"default": "+1 800 555 0100",
			"de":      "+49 30 901820",
		},
		Measurements: map[string]MeasurementPrefs{
			"default": {
				Distance: UnitPreference{Unit: "km", ConversionFrom: map[string]float64{"mi": 1.609344}},
			},
			"en-US": {
				Distance: UnitPreference{Unit: "mi", ConversionFrom: map[string]float64{"km": 0.6213711922}},
			},
		},
		DialPlans: map[string]DialPlan{
			"en-US": {CountryCode: "1", Groups: []int{3, 3, 4}},
			"en-GB": {CountryCode: "44", NationalPrefix: "0", Groups: []int{2, 4, 4}},
		},
	}
}

func TestCurrencyCodeFallsBackThroughParentChain(t *testing.T) {
	svc := NewService(testData(), nil)

	tests := []struct {
		locale string
		want   string
	}{
		{"en-GB", "GBP"},
		{"es-MX", "EUR"}, // es-MX -> es-419 -> es
		{"es", "EUR"},
		{"fr", "USD"}, // nothing matches, "default" wins
	}

	for _, tc := range tests {
		got, err := svc.CurrencyCode(tc.locale)
		if err != nil {
			t.Fatalf("CurrencyCode(%q): %v", tc.locale, err)
		}
		if got != tc.want {
			t.Fatalf("CurrencyCode(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestCurrencyCodeMissing(t *testing.T) {
	svc := NewService(&Data{}, nil)
	if _, err := svc.CurrencyCode("en"); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestSupportNumberUsesConfiguredFallback(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("gsw", "de")

	svc := NewService(&Data{
		SupportNumbers: map[string]string{"de": "+49 30 901820"},
	}, resolver)

	got, err := svc.SupportNumber("gsw")
	if err != nil {
		t.Fatalf("SupportNumber: %v", err)
	}
	if got != "+49 30 901820" {
		t.Fatalf("SupportNumber = %q, want de's number", got)
	}
}

func TestConvertMeasurement(t *testing.T) {
	svc := NewService(testData(), nil)

	value, unit, err := svc.ConvertMeasurement("en-US", 10, "km", "distance")
	if err != nil {
		t.Fatalf("ConvertMeasurement: %v", err)
	}
	if unit != "mi" {
		t.Fatalf("unit = %q, want mi", unit)
	}
	if math.Abs(value-6.213711922) > 1e-9 {
		t.Fatalf("value = %v, want ~6.2137", value)
	}

	// Already in the preferred unit: pass through untouched.
	value, unit, err = svc.ConvertMeasurement("en-US", 5, "mi", "distance")
	if err != nil || value != 5 || unit != "mi" {
		t.Fatalf("pass-through = (%v, %q, %v)", value, unit, err)
	}

	// No conversion factor registered.
	if _, _, err := svc.ConvertMeasurement("en-US", 5, "furlong", "distance"); err == nil {
		t.Fatal("expected error for unknown source unit")
	}
}

func TestDialPlanFormat(t *testing.T) {
	tests := []struct {
		name string
		plan DialPlan
		raw  string
		want string
	}{
		{
			name: "us national",
			plan: DialPlan{CountryCode: "1", Groups: []int{3, 3, 4}},
			raw:  "2125550123",
			want: "+1 212 555 0123",
		},
		{
			name: "gb strips national prefix",
			plan: DialPlan{CountryCode: "44", NationalPrefix: "0", Groups: []int{2, 4, 4}},
			raw:  "020 7946 0800",
			want: "+44 20 7946 0800",
		},
		{
			name: "already international",
			plan: DialPlan{CountryCode: "44", NationalPrefix: "0", Groups: []int{2, 4, 4}},
			raw:  "+44 20 7946 0800",
			want: "+44 20 7946 0800",
		},
		{
			name: "leftover digits append",
			plan: DialPlan{CountryCode: "1", Groups: []int{3}},
			raw:  "2125550123",
			want: "+1 212 5550123",
		},
		{
			name: "unparseable input unchanged",
			plan: DialPlan{CountryCode: "1", Groups: []int{3, 3, 4}},
			raw:  "ask reception",
			want: "ask reception",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.plan.Format(tc.raw); got != tc.want {
				t.Fatalf("Format(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestPhoneNumberPrefersRegisteredFormatter(t *testing.T) {
	svc := NewService(testData(), nil)

	got, err := svc.PhoneNumber("en-US", "2125550123")
	if err != nil {
		t.Fatalf("PhoneNumber: %v", err)
	}
	if got != "+1 212 555 0123" {
		t.Fatalf("dial-plan PhoneNumber = %q", got)
	}

	RegisterPhoneFormatter("sv", func(locale, raw string) string {
		return "custom:" + raw
	})
	got, err = svc.PhoneNumber("sv-SE", "0701234567")
	if err != nil {
		t.Fatalf("PhoneNumber with registered formatter: %v", err)
	}
	if got != "custom:0701234567" {
		t.Fatalf("registered formatter not used, got %q", got)
	}
}

func TestLoaderMergesLayers(t *testing.T) {
	loader := NewLoader("testdata/acme_culture.json")
	data, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Overridden by the file.
	if got := data.CurrencyCodes["en-GB"]; got != "EUR" {
		t.Fatalf("en-GB currency = %q, want file's EUR override", got)
	}
	// Added by the file.
	if got := data.SupportNumbers["pt-BR"]; got != "+55 11 4004 0000" {
		t.Fatalf("pt-BR support number = %q", got)
	}
	// Untouched defaults survive the merge.
	if got := data.CurrencyCodes["ja"]; got != "JPY" {
		t.Fatalf("ja currency = %q, want embedded default", got)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	if _, err := NewLoader("testdata/does_not_exist.json").Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultDataParses(t *testing.T) {
	data, err := DefaultData()
	if err != nil {
		t.Fatalf("DefaultData: %v", err)
	}
	if len(data.CurrencyCodes) == 0 || len(data.DialPlans) == 0 {
		t.Fatal("embedded defaults are incomplete")
	}
}

func TestParentChain(t *testing.T) {
	chain := parentChain("es-MX")
	if len(chain) == 0 {
		t.Fatal("expected a parent chain for es-MX")
	}
	if chain[len(chain)-1] != "es" {
		t.Fatalf("chain = %v, want it to end at es", chain)
	}
}
