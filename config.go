package fluent

import (
	"errors"

	"github.com/tomaszlakomygp/fluent/culture"
)

// Config captures everything needed to assemble a ready-to-format
// Context: the locale, resolution flags, where messages come from, and
// which functions (built-in, culture-backed, caller-supplied) are
// reachable from call expressions.
type Config struct {
	DefaultLocale string
	UseIsolating  *bool
	Loader        Loader
	Parser        Parser
	Functions     map[string]Callable
	Hooks         []FormatHook
	Culture       culture.Service
}

// ConfigOption mutates Config during construction.
type ConfigOption func(*Config) error

// NewConfig builds a Config via the supplied options.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.DefaultLocale == "" {
		return nil, errors.New("fluent: config requires a default locale")
	}
	return cfg, nil
}

// WithDefaultLocale sets the BCP-47 locale the built Context formats for.
func WithDefaultLocale(locale string) ConfigOption {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithIsolating overrides the useIsolating default (true).
func WithIsolating(enabled bool) ConfigOption {
	return func(c *Config) error {
		c.UseIsolating = &enabled
		return nil
	}
}

// WithLoader sets the Loader whose sources Build installs.
func WithLoader(loader Loader) ConfigOption {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithConfigParser swaps the FTL parser used by the built Context.
func WithConfigParser(p Parser) ConfigOption {
	return func(c *Config) error {
		c.Parser = p
		return nil
	}
}

// WithConfigFunctions registers caller-supplied functions. They override
// builtins and culture-backed functions of the same name.
func WithConfigFunctions(fns map[string]Callable) ConfigOption {
	return func(c *Config) error {
		if c.Functions == nil {
			c.Functions = make(map[string]Callable, len(fns))
		}
		for name, fn := range fns {
			c.Functions[name] = fn
		}
		return nil
	}
}

// WithConfigHooks attaches Format observers to the built Context.
func WithConfigHooks(hooks ...FormatHook) ConfigOption {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithCulture exposes a culture.Service to messages as the CURRENCY,
// SUPPORT_NUMBER, MEASUREMENT, and PHONE functions.
func WithCulture(svc culture.Service) ConfigOption {
	return func(c *Config) error {
		c.Culture = svc
		return nil
	}
}

// Build assembles the Context and installs the Loader's sources. The
// returned error list holds non-fatal install diagnostics (syntax
// errors, which never abort installation); the error return is reserved
// for fatal problems such as an unreadable source.
func (cfg *Config) Build() (*Context, []error, error) {
	functions := make(map[string]Callable)
	if cfg.Culture != nil {
		for name, fn := range FunctionsFromCulture(cfg.Culture, cfg.DefaultLocale) {
			functions[name] = fn
		}
	}
	for name, fn := range cfg.Functions {
		functions[name] = fn
	}

	opts := []Option{WithFunctions(functions)}
	if cfg.UseIsolating != nil {
		opts = append(opts, WithUseIsolating(*cfg.UseIsolating))
	}
	if cfg.Parser != nil {
		opts = append(opts, WithParser(cfg.Parser))
	}
	if len(cfg.Hooks) > 0 {
		opts = append(opts, WithHooks(cfg.Hooks...))
	}

	ctx := NewContext(cfg.DefaultLocale, opts...)

	var installErrs []error
	if cfg.Loader != nil {
		sources, err := cfg.Loader.Load()
		if err != nil {
			return nil, nil, err
		}
		for _, src := range sources {
			installErrs = append(installErrs, ctx.AddMessages(src.Text)...)
		}
	}

	return ctx, installErrs, nil
}
