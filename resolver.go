package fluent

import (
	"strconv"
	"time"

	"github.com/tomaszlakomygp/fluent/ast"
)

// MaxPlaceableLength bounds how many characters a single nested placeable
// may contribute to its parent pattern.
const MaxPlaceableLength = 2500

// Unicode bidi isolates bracketing every placeable substitution when
// useIsolating is on.
const (
	isolateFSI = "⁨"
	isolatePDI = "⁩"
)

// env is the per-call resolution state: context, argument bag, shared
// error list, and cycle guard. Resolver invocations are stateless across
// calls — every top-level Format allocates a new env.
type env struct {
	ctx  *Context
	args map[string]any
	errs *[]error

	// dirty is the cycle guard: pattern identities currently being
	// resolved, scoped to this one top-level Format call.
	dirty map[*ast.Pattern]struct{}
}

func newEnv(ctx *Context, args map[string]any, errs *[]error) *env {
	return &env{
		ctx:   ctx,
		args:  args,
		errs:  errs,
		dirty: make(map[*ast.Pattern]struct{}),
	}
}

func (e *env) appendError(kind ErrorKind, format string, args ...any) {
	*e.errs = append(*e.errs, newError(kind, format, args...))
}

// callableValue wraps a resolved FunctionRef so it can travel through the
// same dispatch path as every other Value even though it isn't
// stringifiable — it only ever ends up as a CallExpr's callee.
type callableValue struct {
	name string
	fn   Callable
}

func (callableValue) valueOf(*Context) string    { return "" }
func (callableValue) match(*Context, Value) bool { return false }

// resolveNode is the central dispatcher: it maps any entry-tree node to a
// runtime Value.
func (e *env) resolveNode(node ast.Node) Value {
	switch n := node.(type) {
	case nil:
		return None{}
	case Value:
		// Already a resolved runtime value (e.g. re-dispatch on a
		// previously computed result); returned as-is.
		return n
	case string:
		// Fast path: literal pattern text.
		return String(n)
	case *ast.Pattern:
		return e.resolvePattern(n)
	case ast.Pattern:
		return e.resolvePattern(&n)
	case *ast.StringLiteral:
		return String(n.Value)
	case *ast.NumberLiteral:
		return NewNumber(n.Value)
	case *ast.KeywordLiteral:
		return Keyword(n.Name)
	case *ast.ExternalArg:
		return e.resolveExternalArg(n.Name)
	case *ast.FunctionRef:
		return e.resolveFunctionRef(n.Name)
	case *ast.CallExpr:
		return e.resolveCall(n)
	case *ast.MessageRef:
		return e.resolveMessageRef(n)
	case *ast.AttributeRef:
		return e.resolveAttributeRef(n)
	case *ast.VariantRef:
		return e.resolveVariantRef(n)
	case *ast.SelectExpr:
		return e.resolveSelect(n)
	default:
		// Unknown tag -> None, no error.
		return None{}
	}
}

// resolvePattern walks a pattern's elements in order, applying the cycle
// guard, the placeable-length cap, and (when enabled) bidi isolation.
func (e *env) resolvePattern(p *ast.Pattern) Value {
	if p == nil {
		return None{}
	}

	if _, seen := e.dirty[p]; seen {
		e.appendError(ErrorRange, "Cyclic reference")
		return None{}
	}
	e.dirty[p] = struct{}{}
	defer delete(e.dirty, p)

	result := make([]Value, 0, len(*p))
	for _, elem := range *p {
		if lit, ok := elem.(string); ok {
			result = append(result, String(lit))
			continue
		}

		value := e.resolveNode(elem)

		// Each placeable substitution gets exactly one FSI/PDI pair;
		// literal fragments are emitted raw. A spliced sub-pattern
		// keeps the pairs its own placeables produced, so nested
		// references nest isolation without doubling it per part.
		if e.ctx.useIsolating {
			result = append(result, String(isolateFSI))
		}
		if parts, ok := value.(Parts); ok {
			if parts.length(e.ctx) > MaxPlaceableLength {
				e.appendError(ErrorRange, "Placeable too long")
				result = append(result, None{})
			} else {
				result = append(result, parts.Values...)
			}
		} else {
			result = append(result, value)
		}
		if e.ctx.useIsolating {
			result = append(result, String(isolatePDI))
		}
	}

	return Parts{Values: result}
}

// resolveExternalArg coerces an entry from the caller-supplied argument
// bag into a runtime Value.
func (e *env) resolveExternalArg(name string) Value {
	raw, ok := e.args[name]
	if !ok {
		e.appendError(ErrorReference, "Unknown external: %s", name)
		return NewNone(name)
	}

	switch v := raw.(type) {
	case Value:
		return v
	case string:
		return String(v)
	case int:
		return NewNumber(formatInt(int64(v)))
	case int32:
		return NewNumber(formatInt(int64(v)))
	case int64:
		return NewNumber(formatInt(v))
	case float32:
		return NewNumber(formatFloat(float64(v)))
	case float64:
		return NewNumber(formatFloat(v))
	case time.Time:
		return DateTime{Instant: v}
	default:
		e.appendError(ErrorType, "Unsupported external type for %s", name)
		return NewNone(name)
	}
}

func formatInt(v int64) string     { return strconv.FormatInt(v, 10) }
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// resolveFunctionRef looks the name up in the user registry, then the
// builtin registry.
func (e *env) resolveFunctionRef(name string) Value {
	fn, ok := e.ctx.lookupFunction(name)
	if !ok {
		e.appendError(ErrorReference, "Unknown function: %s", name)
		return NewNone(name + "()")
	}
	if fn == nil {
		e.appendError(ErrorType, "Not callable: %s", name)
		return NewNone(name + "()")
	}
	return callableValue{name: name, fn: fn}
}

// resolveCall resolves the callee and its arguments, then invokes it.
func (e *env) resolveCall(call *ast.CallExpr) Value {
	callee := e.resolveNode(call.Fun)
	cv, ok := callee.(callableValue)
	if !ok {
		return callee // propagate the None the function lookup produced
	}

	positional := make([]Value, 0, len(call.Positional))
	for _, arg := range call.Positional {
		positional = append(positional, e.resolveNode(arg))
	}

	var named map[string]Value
	if len(call.NamedOrder) > 0 {
		named = make(map[string]Value, len(call.NamedOrder))
		for _, key := range call.NamedOrder {
			named[key] = e.resolveNode(call.Named[key])
		}
	}

	return cv.fn(positional, named)
}

// resolveMessageRef follows a reference to another message/term and
// re-enters dispatch on its value.
func (e *env) resolveMessageRef(ref *ast.MessageRef) Value {
	entry, ok := e.ctx.message(ref.Name)
	if !ok {
		e.appendError(ErrorReference, "Unknown message: %s", ref.Name)
		return NewNone(ref.Name)
	}
	if entry.Value == nil {
		e.appendError(ErrorRange, "No value: %s", ref.Name)
		return None{}
	}
	return e.resolveNode(&entry.Value)
}

// resolveAttributeRef looks up a named attribute by exact string match; a
// missing attribute falls back to the referenced message's main value and
// appends a reference error. When the message also has no value, the
// fallback stringifies to "???" and the reference error on the list is
// what points at the real cause.
func (e *env) resolveAttributeRef(ref *ast.AttributeRef) Value {
	entry, ok := e.ctx.message(ref.Ref)
	if !ok {
		e.appendError(ErrorReference, "Unknown message: %s", ref.Ref)
		return NewNone(ref.Ref + "." + ref.Name)
	}

	if pattern, found := entry.AttributePattern(ref.Name); found {
		return e.resolveNode(pattern)
	}

	e.appendError(ErrorReference, "Unknown attribute: %s.%s", ref.Ref, ref.Name)
	if entry.Value == nil {
		return None{}
	}
	return e.resolveNode(&entry.Value)
}

// resolveVariantRef looks up an explicit variant of a term's variant
// list, e.g. `{ -brand[gen] }`.
func (e *env) resolveVariantRef(ref *ast.VariantRef) Value {
	entry, ok := e.ctx.message(ref.Ref)
	if !ok {
		e.appendError(ErrorReference, "Unknown message: %s", ref.Ref)
		return NewNone(ref.Ref)
	}

	sel, ok := ast.IsVariantList(entry.Value)
	if !ok {
		e.appendError(ErrorReference, "Unknown variant: %s[%v]", ref.Ref, ref.Key)
		if entry.Value == nil {
			return None{}
		}
		return e.resolveNode(&entry.Value)
	}

	wantKey := e.resolveNode(ref.Key)
	for i := range sel.Variants {
		key := e.resolveNode(sel.Variants[i].Key)
		if variantKeyEquals(key, wantKey) {
			return e.resolveNode(&sel.Variants[i].Value)
		}
	}

	e.appendError(ErrorReference, "Unknown variant: %s[%v]", ref.Ref, ref.Key)
	return e.resolveNode(&sel.Variants[sel.Default].Value)
}

// variantKeyEquals compares two resolved variant keys (always Keyword or
// Number) for exact identity — not selector matching, just equality
// between two literal keys.
func variantKeyEquals(a, b Value) bool {
	switch av := a.(type) {
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false
		}
		if af, aok := av.float(); aok {
			if bf, bok := bv.float(); bok {
				return af == bf
			}
		}
		return av.Raw == bv.Raw
	default:
		return false
	}
}

// resolveSelect evaluates a select expression.
func (e *env) resolveSelect(sel *ast.SelectExpr) Value {
	if sel.Selector == nil {
		return e.resolveNode(&sel.Variants[sel.Default].Value)
	}

	selector := e.resolveNode(sel.Selector)
	if _, isNone := selector.(None); isNone {
		return e.resolveNode(&sel.Variants[sel.Default].Value)
	}

	for i := range sel.Variants {
		key := e.resolveNode(sel.Variants[i].Key)
		if selector.match(e.ctx, key) {
			return e.resolveNode(&sel.Variants[i].Value)
		}
	}

	return e.resolveNode(&sel.Variants[sel.Default].Value)
}
