package fluent

import "testing"

func TestParseNumberOperands(t *testing.T) {
	tests := []struct {
		raw string
		n   float64
		i   int64
		v   int
		f   int64
		w   int
		t   int64
	}{
		{"1", 1, 1, 0, 0, 0, 0},
		{"1.50", 1.5, 1, 2, 50, 1, 5},
		{"1.5", 1.5, 1, 1, 5, 1, 5},
		{"-3", 3, 3, 0, 0, 0, 0},
		{"100.00", 100, 100, 2, 0, 0, 0},
	}

	for _, tc := range tests {
		ops := parseNumberOperands(tc.raw)
		if ops.n != tc.n || ops.i != tc.i || ops.v != tc.v || ops.f != tc.f || ops.w != tc.w || ops.t != tc.t {
			t.Fatalf("%q: got %+v", tc.raw, ops)
		}
	}
}

func TestEnglishCategories(t *testing.T) {
	set := builtinPluralRules["en"]

	tests := []struct {
		raw  string
		want PluralCategory
	}{
		{"1", PluralOne},
		{"2", PluralOther},
		{"0", PluralOther},
		{"1.0", PluralOther}, // v != 0
	}
	for _, tc := range tests {
		if got := set.Category(tc.raw); got != tc.want {
			t.Fatalf("en %q = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestRussianCategories(t *testing.T) {
	set := builtinPluralRules["ru"]

	tests := []struct {
		raw  string
		want PluralCategory
	}{
		{"1", PluralOne},
		{"21", PluralOne},
		{"2", PluralFew},
		{"23", PluralFew},
		{"5", PluralMany},
		{"11", PluralMany},
		{"12", PluralMany},
		{"100", PluralMany},
		{"1.5", PluralOther}, // v != 0 falls through every rule
	}
	for _, tc := range tests {
		if got := set.Category(tc.raw); got != tc.want {
			t.Fatalf("ru %q = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestPolishCategories(t *testing.T) {
	set := builtinPluralRules["pl"]

	tests := []struct {
		raw  string
		want PluralCategory
	}{
		{"1", PluralOne},
		{"2", PluralFew},
		{"22", PluralFew},
		{"5", PluralMany},
		{"12", PluralMany},
		{"21", PluralMany}, // i%10 in 0..1 and i != 1
	}
	for _, tc := range tests {
		if got := set.Category(tc.raw); got != tc.want {
			t.Fatalf("pl %q = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestFrenchCategories(t *testing.T) {
	set := builtinPluralRules["fr"]
	if got := set.Category("0"); got != PluralOne {
		t.Fatalf("fr 0 = %s, want one", got)
	}
	if got := set.Category("1.5"); got != PluralOne {
		t.Fatalf("fr 1.5 = %s, want one (i = 1)", got)
	}
	if got := set.Category("2"); got != PluralOther {
		t.Fatalf("fr 2 = %s, want other", got)
	}
}

func TestLookupPluralRulesStripsRegion(t *testing.T) {
	if set := lookupPluralRules("ru-RU"); set == nil || set.Locale != "ru" {
		t.Fatalf("ru-RU lookup = %+v", set)
	}
	if set := lookupPluralRules("xx"); set != nil {
		t.Fatalf("xx lookup = %+v, want nil", set)
	}
}

func TestNilRuleSetIsOther(t *testing.T) {
	var set *PluralRuleSet
	if got := set.Category("1"); got != PluralOther {
		t.Fatalf("nil set category = %s", got)
	}
	// A registered locale with no rules (ja) behaves the same way.
	if got := builtinPluralRules["ja"].Category("1"); got != PluralOther {
		t.Fatalf("ja category = %s", got)
	}
}
