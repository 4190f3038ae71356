package fluent

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLoaderWalksAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.ftl"), "bye = Bye")
	writeFile(t, filepath.Join(dir, "a.ftl"), "hello = Hello")
	writeFile(t, filepath.Join(dir, "nested", "c.ftl"), "nested = Yes")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "not ftl")

	sources, err := NewFileLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sources) != 3 {
		t.Fatalf("got %d sources, want 3", len(sources))
	}
	if filepath.Base(sources[0].Name) != "a.ftl" || filepath.Base(sources[1].Name) != "b.ftl" {
		t.Fatalf("order = %q, %q", sources[0].Name, sources[1].Name)
	}
	if sources[2].Text != "nested = Yes" {
		t.Fatalf("nested source text = %q", sources[2].Text)
	}
}

func TestFileLoaderMissingRoot(t *testing.T) {
	if _, err := NewFileLoader("does/not/exist").Load(); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestParseArgsYAML(t *testing.T) {
	args, err := ParseArgsYAML([]byte("name: Anna\ncount: 3\nprice: 9.99\n"))
	if err != nil {
		t.Fatalf("ParseArgsYAML: %v", err)
	}
	if args["name"] != "Anna" {
		t.Fatalf("name = %v", args["name"])
	}
	if args["count"] != 3 {
		t.Fatalf("count = %v (%T)", args["count"], args["count"])
	}
	if args["price"] != 9.99 {
		t.Fatalf("price = %v (%T)", args["price"], args["price"])
	}
}

func TestLoadArgsYAMLFeedsResolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.yaml")
	writeFile(t, path, "n: 2\nname: Anna\n")

	args, err := LoadArgsYAML(path)
	if err != nil {
		t.Fatalf("LoadArgsYAML: %v", err)
	}

	ctx := newTestContext(t, "msg = { $name } has { $n -> *[one] one item [other] some items }")
	result, errs := formatMessage(t, ctx, "msg", args)
	if result != "Anna has some items" || len(errs) != 0 {
		t.Fatalf("got (%q, %v)", result, errs)
	}
}

func TestStaticLoaderCopies(t *testing.T) {
	loader := NewStaticLoader(Source{Name: "x", Text: "a = A"})
	first, _ := loader.Load()
	first[0].Text = "mutated"

	second, _ := loader.Load()
	if second[0].Text != "a = A" {
		t.Fatal("Load shares its backing slice with callers")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
