package fluent

import (
	"errors"
	"testing"
)

func TestResolverErrorString(t *testing.T) {
	err := newError(ErrorReference, "Unknown message: %s", "foo")
	want := "fluent: reference: Unknown message: foo"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFilterErrors(t *testing.T) {
	errs := []error{
		newError(ErrorReference, "a"),
		newError(ErrorRange, "b"),
		newError(ErrorReference, "c"),
		errors.New("not a resolver error"),
	}

	refs := FilterErrors(errs, ErrorReference)
	if len(refs) != 2 || refs[0].Message != "a" || refs[1].Message != "c" {
		t.Fatalf("reference filter = %v", refs)
	}
	if got := FilterErrors(errs, ErrorType); len(got) != 0 {
		t.Fatalf("type filter = %v, want empty", got)
	}
}
