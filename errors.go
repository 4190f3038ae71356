package fluent

import "fmt"

// ErrorKind classifies a ResolverError.
type ErrorKind string

const (
	// ErrorReference covers unknown messages, externals, attributes,
	// variants, and functions.
	ErrorReference ErrorKind = "reference"
	// ErrorRange covers a value-less message with no default, a cyclic
	// reference, and a placeable exceeding MaxPlaceableLength.
	ErrorRange ErrorKind = "range"
	// ErrorType covers an external argument of unsupported kind or a
	// callable slot that isn't callable.
	ErrorType ErrorKind = "type"
	// ErrorSyntax is raised by the parser during AddMessages.
	ErrorSyntax ErrorKind = "syntax"
)

// ResolverError is a non-fatal error appended to the calling invocation's
// error list. The resolver never returns one directly; it always pairs an
// appended ResolverError with a best-effort fallback Value.
type ResolverError struct {
	Kind    ErrorKind
	Message string
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("fluent: %s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *ResolverError {
	return &ResolverError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// FilterErrors returns the subset of errs whose ResolverError Kind matches
// kind. Errors not produced by this package (e.g. a parser error that
// chose not to wrap itself) are skipped.
func FilterErrors(errs []error, kind ErrorKind) []*ResolverError {
	var out []*ResolverError
	for _, err := range errs {
		if re, ok := err.(*ResolverError); ok && re.Kind == kind {
			out = append(out, re)
		}
	}
	return out
}
