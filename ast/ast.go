// Package ast defines the runtime entry tree that the parser produces and
// the resolver consumes. Entries are either messages or terms; both share
// the same shape (an optional value pattern plus zero or more attributes).
package ast

// Node is either a literal string fragment or an Expr. Patterns are
// sequences of Node.
type Node any

// Pattern is an ordered sequence of literal string fragments and
// expressions that resolves to a formatted string.
type Pattern []Node

// Entry is a message or a term: an optional value pattern plus attributes.
type Entry struct {
	Value      Pattern // nil means "no value" (attribute-only entry)
	Attributes []Attribute
}

// Attribute finds an attribute by exact name match, honoring declaration
// order for the (rare) case of duplicate names.
func (e *Entry) Attribute(name string) (Pattern, bool) {
	if e == nil {
		return nil, false
	}
	for _, attr := range e.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// AttributePattern is like Attribute but returns a pointer into the
// Attributes slice rather than a copy, so callers that key cycle-detection
// state on pattern identity (resolver.go's dirty set) see the same
// identity on every lookup of the same attribute.
func (e *Entry) AttributePattern(name string) (*Pattern, bool) {
	if e == nil {
		return nil, false
	}
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i].Value, true
		}
	}
	return nil, false
}

// Attribute is a name/pattern pair attached to an Entry.
type Attribute struct {
	Name  string
	Value Pattern
}

// Expr is the marker interface implemented by every expression tag.
// The resolver dispatches on the concrete type, not on this method.
type Expr interface {
	exprNode()
}

// StringLiteral is a quoted string literal used inside a placeable, e.g.
// the call argument in NUMBER("1", style: "percent"). Bare pattern text
// outside of placeables is represented as a plain Go string, not this type.
type StringLiteral struct{ Value string }

// NumberLiteral retains the literal's original textual form so format
// options can be merged without re-rendering the number.
type NumberLiteral struct{ Value string }

// KeywordLiteral is an identifier used as a variant key or returned as a
// Keyword runtime value.
type KeywordLiteral struct{ Name string }

// MessageRef references another message or term by name (tag "ref").
type MessageRef struct{ Name string }

// ExternalArg references a name in the caller-supplied argument bag
// (tag "ext").
type ExternalArg struct{ Name string }

// AttributeRef references a named attribute of another entry (tag "attr").
type AttributeRef struct {
	Ref  string
	Name string
}

// VariantRef references an explicit variant of a term's variant list
// (tag "var"). Key is a KeywordLiteral or NumberLiteral.
type VariantRef struct {
	Ref string
	Key Node
}

// FunctionRef names a callable resolved from the user or builtin function
// registry (tag "fun").
type FunctionRef struct{ Name string }

// CallExpr invokes a FunctionRef with positional and named arguments
// (tag "call"). NamedOrder preserves declaration order for deterministic
// iteration and error messages.
type CallExpr struct {
	Fun        Expr
	Positional []Expr
	Named      map[string]Expr
	NamedOrder []string
}

// Variant is a (key, value) pair inside a SelectExpr.
type Variant struct {
	Key   Node
	Value Pattern
}

// SelectExpr selects among Variants by matching Selector against each
// variant's key, falling back to Variants[Default] (tag "sel"). Selector
// is nil for the variant-list form referenced via VariantRef.
type SelectExpr struct {
	Selector Expr
	Variants []Variant
	Default  int
}

func (*StringLiteral) exprNode()  {}
func (*NumberLiteral) exprNode()  {}
func (*KeywordLiteral) exprNode() {}
func (*MessageRef) exprNode()     {}
func (*ExternalArg) exprNode()    {}
func (*AttributeRef) exprNode()   {}
func (*VariantRef) exprNode()     {}
func (*FunctionRef) exprNode()    {}
func (*CallExpr) exprNode()       {}
func (*SelectExpr) exprNode()     {}

// IsVariantList reports whether a pattern is the single-sel-node form used
// to expose a term's named variants (e.g. `-brand = {*[nom] Firefox [gen] Firefoxa}`).
func IsVariantList(p Pattern) (*SelectExpr, bool) {
	if len(p) != 1 {
		return nil, false
	}
	sel, ok := p[0].(*SelectExpr)
	if !ok || sel.Selector != nil {
		return nil, false
	}
	return sel, true
}
