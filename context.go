package fluent

import (
	"sync"

	"github.com/tomaszlakomygp/fluent/ast"
)

// Callable is a function reachable from a CallExpr, either a builtin
// (builtins.go) or user-supplied via WithFunctions.
// Positional holds arguments in source order; named holds keyword
// arguments. It is expected to return a Value and never panic.
type Callable func(positional []Value, named map[string]Value) Value

// Parser turns Fluent source text into entries. The default Context uses
// the bundled syntax package; WithParser lets a caller swap in a
// different one.
type Parser interface {
	Parse(source string) (map[string]*ast.Entry, []error)
}

// Context owns a single locale, a name->entry mapping, a function
// registry, and the formatter cache. It is immutable after message
// installation except for the formatter cache, which grows monotonically.
type Context struct {
	locale       string
	useIsolating bool
	parser       Parser

	mu        sync.RWMutex
	messages  map[string]*ast.Entry
	functions map[string]Callable

	hooks []FormatHook
	cache *formatterCache
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithUseIsolating overrides the default (true): whether placeable
// substitutions are bracketed in FSI/PDI bidi isolates.
func WithUseIsolating(enabled bool) Option {
	return func(c *Context) { c.useIsolating = enabled }
}

// WithFunctions registers user-supplied functions. User functions
// override builtins of the same name.
func WithFunctions(fns map[string]Callable) Option {
	return func(c *Context) {
		for name, fn := range fns {
			c.functions[name] = fn
		}
	}
}

// WithParser swaps the default FTL parser for a caller-supplied one.
func WithParser(p Parser) Option {
	return func(c *Context) { c.parser = p }
}

// WithHooks attaches observers invoked around every Format call.
func WithHooks(hooks ...FormatHook) Option {
	return func(c *Context) {
		for _, h := range hooks {
			if h != nil {
				c.hooks = append(c.hooks, h)
			}
		}
	}
}

// NewContext builds a Context for the given BCP-47 locale tag.
// useIsolating defaults to true.
func NewContext(locale string, opts ...Option) *Context {
	c := &Context{
		locale:       locale,
		useIsolating: true,
		messages:     make(map[string]*ast.Entry),
		functions:    make(map[string]Callable),
		cache:        newFormatterCache(locale),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.parser == nil {
		c.parser = defaultParser{}
	}
	return c
}

// Locale returns the context's BCP-47 locale tag.
func (c *Context) Locale() string { return c.locale }

// AddMessages parses source with the configured Parser and installs the
// resulting entries, overwriting any duplicate names. A malformed entry
// is reported in the returned error list but does not prevent well-formed
// entries from the same source from being installed.
func (c *Context) AddMessages(source string) []error {
	entries, errs := c.parser.Parse(source)

	c.mu.Lock()
	for name, entry := range entries {
		c.messages[name] = entry
	}
	c.mu.Unlock()

	return errs
}

// HasMessage reports whether name is installed.
func (c *Context) HasMessage(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[name]
	return ok
}

// Message returns the installed entry for name. The entry is shared, not
// copied; callers must treat it as read-only.
func (c *Context) Message(name string) (*ast.Entry, bool) {
	return c.message(name)
}

func (c *Context) message(name string) (*ast.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.messages[name]
	return entry, ok
}

// lookupFunction checks the user registry first, then the builtin
// registry.
func (c *Context) lookupFunction(name string) (Callable, bool) {
	c.mu.RLock()
	fn, ok := c.functions[name]
	c.mu.RUnlock()
	if ok {
		return fn, true
	}
	return lookupBuiltin(name)
}

func (c *Context) formatters() *formatterCache { return c.cache }

// Format produces the final string for node, which is either a message
// *ast.Entry or a bare ast.Pattern. If the entry has no value (an
// attribute-only message referenced directly), it returns ("", false)
// and does not append any error.
func (c *Context) Format(node any, args map[string]any, errs *[]error) (string, bool) {
	if errs == nil {
		errs = new([]error)
	}

	var fc *FormatHookContext
	if len(c.hooks) > 0 {
		fc = &FormatHookContext{Locale: c.locale, Args: args}
		for _, h := range c.hooks {
			h.BeforeFormat(fc)
		}
	}

	result, found := c.format(node, args, errs)

	if fc != nil {
		fc.Result = result
		fc.Found = found
		fc.Errors = *errs
		for _, h := range c.hooks {
			h.AfterFormat(fc)
		}
	}
	return result, found
}

func (c *Context) format(node any, args map[string]any, errs *[]error) (string, bool) {
	env := newEnv(c, args, errs)

	var pattern *ast.Pattern
	switch n := node.(type) {
	case *ast.Entry:
		if n == nil || n.Value == nil {
			return "", false
		}
		pattern = &n.Value
	case ast.Pattern:
		pattern = &n
	case *ast.Pattern:
		pattern = n
	default:
		return "", false
	}

	value := env.resolvePattern(pattern)
	return value.valueOf(c), true
}
