package syntax

import (
	"testing"

	"github.com/tomaszlakomygp/fluent/ast"
)

func parseOne(t *testing.T, source, name string) *ast.Entry {
	t.Helper()
	entries, errs := Parse(source)
	if len(errs) > 0 {
		t.Fatalf("Parse errors: %v", errs)
	}
	entry, ok := entries[name]
	if !ok {
		t.Fatalf("entry %q not parsed (have %d entries)", name, len(entries))
	}
	return entry
}

func TestParseSimpleMessage(t *testing.T) {
	entry := parseOne(t, "hello = Hello, world!", "hello")
	if len(entry.Value) != 1 || entry.Value[0] != "Hello, world!" {
		t.Fatalf("value = %#v", entry.Value)
	}
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	entries, errs := Parse("# a comment\n\nfoo = Foo\n\n# trailing")
	if len(errs) > 0 || len(entries) != 1 {
		t.Fatalf("got %d entries, %v", len(entries), errs)
	}
}

func TestParseAttributes(t *testing.T) {
	entry := parseOne(t, "login = Log in\n    .title = Click to log in\n    .aria = Log in button", "login")

	if len(entry.Attributes) != 2 {
		t.Fatalf("attributes = %#v", entry.Attributes)
	}
	if entry.Attributes[0].Name != "title" || entry.Attributes[1].Name != "aria" {
		t.Fatal("attribute order not preserved")
	}
	if pattern, ok := entry.Attribute("title"); !ok || pattern[0] != "Click to log in" {
		t.Fatalf("title attribute = %#v", pattern)
	}
}

func TestParseValuelessEntry(t *testing.T) {
	entry := parseOne(t, "icon =\n    .alt = App icon", "icon")
	if entry.Value != nil {
		t.Fatalf("value = %#v, want nil", entry.Value)
	}
	if _, ok := entry.Attribute("alt"); !ok {
		t.Fatal("attribute missing")
	}
}

func TestParseTerm(t *testing.T) {
	entry := parseOne(t, "-brand = Firefox\nabout = About { -brand }", "-brand")
	if entry.Value[0] != "Firefox" {
		t.Fatalf("term value = %#v", entry.Value)
	}

	about := parseOne(t, "-brand = Firefox\nabout = About { -brand }", "about")
	ref, ok := about.Value[1].(*ast.MessageRef)
	if !ok || ref.Name != "-brand" {
		t.Fatalf("reference = %#v", about.Value[1])
	}
}

func TestParseExternalArgAndLiterals(t *testing.T) {
	entry := parseOne(t, `msg = { $name } has { 3 } of { "x" }`, "msg")

	if _, ok := entry.Value[0].(*ast.ExternalArg); !ok {
		t.Fatalf("first placeable = %#v", entry.Value[0])
	}
	num, ok := entry.Value[2].(*ast.NumberLiteral)
	if !ok || num.Value != "3" {
		t.Fatalf("second placeable = %#v", entry.Value[2])
	}
	str, ok := entry.Value[4].(*ast.StringLiteral)
	if !ok || str.Value != "x" {
		t.Fatalf("third placeable = %#v", entry.Value[4])
	}
}

func TestParseSelectExpression(t *testing.T) {
	entry := parseOne(t, "emails = { $count -> [one] One email *[other] { $count } emails }", "emails")

	sel, ok := entry.Value[0].(*ast.SelectExpr)
	if !ok {
		t.Fatalf("placeable = %#v", entry.Value[0])
	}
	if _, ok := sel.Selector.(*ast.ExternalArg); !ok {
		t.Fatalf("selector = %#v", sel.Selector)
	}
	if len(sel.Variants) != 2 || sel.Default != 1 {
		t.Fatalf("variants = %d, default = %d", len(sel.Variants), sel.Default)
	}
	key, ok := sel.Variants[0].Key.(*ast.KeywordLiteral)
	if !ok || key.Name != "one" {
		t.Fatalf("first key = %#v", sel.Variants[0].Key)
	}
	// The default variant's value contains a nested placeable.
	if _, ok := sel.Variants[1].Value[0].(*ast.ExternalArg); !ok {
		t.Fatalf("default variant value = %#v", sel.Variants[1].Value)
	}
}

func TestParseNumberVariantKeys(t *testing.T) {
	entry := parseOne(t, "pos = { $p -> [1] first *[2] second }", "pos")
	sel := entry.Value[0].(*ast.SelectExpr)

	key, ok := sel.Variants[0].Key.(*ast.NumberLiteral)
	if !ok || key.Value != "1" {
		t.Fatalf("key = %#v", sel.Variants[0].Key)
	}
}

func TestParseVariantList(t *testing.T) {
	entry := parseOne(t, "-brand = { *[nom] Firefox [gen] Firefoxa }", "-brand")

	sel, ok := ast.IsVariantList(entry.Value)
	if !ok {
		t.Fatalf("value = %#v, want a variant list", entry.Value)
	}
	if sel.Selector != nil || len(sel.Variants) != 2 || sel.Default != 0 {
		t.Fatalf("variant list = %#v", sel)
	}
}

func TestParseVariantAndAttributeAccess(t *testing.T) {
	entry := parseOne(t, "msg = { -brand[gen] } / { other.label }", "msg")

	vref, ok := entry.Value[0].(*ast.VariantRef)
	if !ok || vref.Ref != "-brand" {
		t.Fatalf("variant ref = %#v", entry.Value[0])
	}
	key, ok := vref.Key.(*ast.KeywordLiteral)
	if !ok || key.Name != "gen" {
		t.Fatalf("variant key = %#v", vref.Key)
	}

	aref, ok := entry.Value[2].(*ast.AttributeRef)
	if !ok || aref.Ref != "other" || aref.Name != "label" {
		t.Fatalf("attribute ref = %#v", entry.Value[2])
	}
}

func TestParseCallExpression(t *testing.T) {
	entry := parseOne(t, `price = { NUMBER($amount, minimumFractionDigits: 2, style: "currency") }`, "price")

	call, ok := entry.Value[0].(*ast.CallExpr)
	if !ok {
		t.Fatalf("placeable = %#v", entry.Value[0])
	}
	fun, ok := call.Fun.(*ast.FunctionRef)
	if !ok || fun.Name != "NUMBER" {
		t.Fatalf("callee = %#v", call.Fun)
	}
	if len(call.Positional) != 1 {
		t.Fatalf("positional = %#v", call.Positional)
	}
	if len(call.NamedOrder) != 2 || call.NamedOrder[0] != "minimumFractionDigits" || call.NamedOrder[1] != "style" {
		t.Fatalf("named order = %#v", call.NamedOrder)
	}
	if _, ok := call.Named["style"].(*ast.StringLiteral); !ok {
		t.Fatalf("style arg = %#v", call.Named["style"])
	}
}

func TestParseEscapedBraces(t *testing.T) {
	entry := parseOne(t, `msg = literal \{ brace \} here`, "msg")
	if entry.Value[0] != "literal { brace } here" {
		t.Fatalf("value = %#v", entry.Value)
	}
}

func TestParseMultilineValue(t *testing.T) {
	entry := parseOne(t, "para = first line\n    second line", "para")
	if entry.Value[0] != "first line\nsecond line" {
		t.Fatalf("value = %#v", entry.Value)
	}
}

func TestParseErrorsDoNotAbortInstallation(t *testing.T) {
	entries, errs := Parse("123 = bad name\nok = Fine\nbroken = { $ }\nalso-ok = Yes")

	if len(errs) != 2 {
		t.Fatalf("errors = %v, want two", errs)
	}
	if _, ok := entries["ok"]; !ok {
		t.Fatal("ok missing")
	}
	if _, ok := entries["also-ok"]; !ok {
		t.Fatal("also-ok missing")
	}
	if _, ok := entries["123"]; ok {
		t.Fatal("malformed name installed")
	}
	// broken still installs with its malformed placeable skipped.
	if _, ok := entries["broken"]; !ok {
		t.Fatal("entry with a bad placeable should still install")
	}
}

func TestParseUnterminatedPlaceable(t *testing.T) {
	entries, errs := Parse("msg = { foo")
	if len(errs) != 1 {
		t.Fatalf("errors = %v", errs)
	}
	if _, ok := entries["msg"]; !ok {
		t.Fatal("entry should still install")
	}
}
