package fluent

import (
	"github.com/tomaszlakomygp/fluent/ast"
	"github.com/tomaszlakomygp/fluent/syntax"
)

// defaultParser adapts the bundled FTL syntax package to the Parser
// interface, wrapping its raw errors as ErrorSyntax ResolverErrors so
// FilterErrors(errs, ErrorSyntax) sees them.
type defaultParser struct{}

func (defaultParser) Parse(source string) (map[string]*ast.Entry, []error) {
	entries, errs := syntax.Parse(source)
	if len(errs) == 0 {
		return entries, nil
	}
	wrapped := make([]error, len(errs))
	for i, err := range errs {
		wrapped[i] = newError(ErrorSyntax, "%v", err)
	}
	return entries, wrapped
}
