package fluent

import "strconv"

// builtinFunctions is the fixed built-in registry: immutable after
// construction, consulted only when a name isn't found in a Context's
// user-supplied registry.
var builtinFunctions = map[string]Callable{
	"NUMBER":   builtinNumber,
	"DATETIME": builtinDateTime,
}

func lookupBuiltin(name string) (Callable, bool) {
	fn, ok := builtinFunctions[name]
	return fn, ok
}

// builtinNumber wraps its first positional argument as a Number, merging
// any named formatting options onto it.
func builtinNumber(positional []Value, named map[string]Value) Value {
	if len(positional) == 0 {
		return NewNone("NUMBER()")
	}
	n := toNumber(positional[0])
	n.Options = mergeNumberOptions(n.Options, named)
	return n
}

func toNumber(v Value) Number {
	switch n := v.(type) {
	case Number:
		return n
	case String:
		return NewNumber(string(n))
	default:
		return NewNumber(v.valueOf(nil))
	}
}

func mergeNumberOptions(base NumberOptions, named map[string]Value) NumberOptions {
	for key, v := range named {
		switch key {
		case "style":
			base.Style = valueString(v)
		case "currency":
			base.Currency = valueString(v)
		case "minimumFractionDigits":
			base.MinimumFractionDigits = valueInt(v)
		case "maximumFractionDigits":
			base.MaximumFractionDigits = valueInt(v)
		case "minimumIntegerDigits":
			base.MinimumIntegerDigits = valueInt(v)
		case "useGrouping":
			b := valueBool(v)
			base.UseGrouping = &b
		}
	}
	return base
}

// builtinDateTime wraps its first positional argument as a DateTime,
// merging any named formatting options onto it.
func builtinDateTime(positional []Value, named map[string]Value) Value {
	if len(positional) == 0 {
		return NewNone("DATETIME()")
	}
	d, ok := positional[0].(DateTime)
	if !ok {
		return NewNone("DATETIME()")
	}
	d.Options = mergeDateTimeOptions(d.Options, named)
	return d
}

func mergeDateTimeOptions(base DateTimeOptions, named map[string]Value) DateTimeOptions {
	for key, v := range named {
		switch key {
		case "dateStyle":
			base.DateStyle = valueString(v)
		case "timeStyle":
			base.TimeStyle = valueString(v)
		case "hour12":
			b := valueBool(v)
			base.Hour12 = &b
		}
	}
	return base
}

func valueString(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case String:
		return string(t)
	case Keyword:
		return string(t)
	default:
		return v.valueOf(nil)
	}
}

func valueInt(v Value) int {
	if n, ok := v.(Number); ok {
		if f, ok := n.float(); ok {
			return int(f)
		}
	}
	n, _ := strconv.Atoi(valueString(v))
	return n
}

func valueBool(v Value) bool {
	switch valueString(v) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
