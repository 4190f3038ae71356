// Command fluent-format resolves one message from a set of FTL files and
// prints the formatted result, for trying out message sources from the
// shell:
//
//	fluent-format -l en-US -a '{"name": "Anna"}' greeting ./locales/en
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomaszlakomygp/fluent"
	"github.com/tomaszlakomygp/fluent/culture"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	locale      string
	argsJSON    string
	argsYAML    string
	culturePath string
	noIsolating bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "fluent-format [flags] <message>[.attribute] <path>...",
		Short: "Resolve a Fluent message to its formatted string",
		Long: `fluent-format loads every .ftl file from the given paths (files or
directories), resolves the named message against the supplied arguments,
and prints the result. Resolution errors are reported on stderr but do
not abort formatting; the printed string is best-effort, exactly as the
library behaves.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args[0], args[1:])
		},
	}

	cmd.Flags().StringVarP(&flags.locale, "locale", "l", "en-US", "BCP-47 locale tag to format for")
	cmd.Flags().StringVarP(&flags.argsJSON, "args", "a", "", "external arguments as a JSON object")
	cmd.Flags().StringVar(&flags.argsYAML, "args-file", "", "YAML file with external arguments")
	cmd.Flags().StringVar(&flags.culturePath, "culture", "", "JSON file with culture data (enables CURRENCY, SUPPORT_NUMBER, MEASUREMENT, PHONE)")
	cmd.Flags().BoolVar(&flags.noIsolating, "no-isolating", false, "disable FSI/PDI bidi isolation around placeables")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each format call")

	return cmd
}

func run(cmd *cobra.Command, flags rootFlags, messageRef string, paths []string) error {
	args, err := collectArgs(flags)
	if err != nil {
		return err
	}

	loader, err := sourcesFor(paths)
	if err != nil {
		return err
	}

	opts := []fluent.ConfigOption{
		fluent.WithDefaultLocale(flags.locale),
		fluent.WithIsolating(!flags.noIsolating),
		fluent.WithLoader(loader),
	}
	if flags.culturePath != "" {
		data, err := culture.NewLoader(flags.culturePath).Load()
		if err != nil {
			return err
		}
		opts = append(opts, fluent.WithCulture(culture.NewService(data, nil)))
	}
	if flags.verbose {
		opts = append(opts, fluent.WithConfigHooks(&logHook{
			logger: log.New(cmd.ErrOrStderr(), "fluent-format: ", 0),
		}))
	}

	cfg, err := fluent.NewConfig(opts...)
	if err != nil {
		return err
	}
	ctx, installErrs, err := cfg.Build()
	if err != nil {
		return err
	}
	for _, ierr := range installErrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", ierr)
	}

	name, attribute, _ := strings.Cut(messageRef, ".")
	entry, ok := ctx.Message(name)
	if !ok {
		return fmt.Errorf("no message named %q", name)
	}

	var node any = entry
	if attribute != "" {
		pattern, found := entry.AttributePattern(attribute)
		if !found {
			return fmt.Errorf("message %q has no attribute %q", name, attribute)
		}
		node = pattern
	}

	var errs []error
	result, found := ctx.Format(node, args, &errs)
	for _, rerr := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", rerr)
	}
	if !found {
		return fmt.Errorf("message %q has no value", messageRef)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func collectArgs(flags rootFlags) (map[string]any, error) {
	args := make(map[string]any)

	if flags.argsYAML != "" {
		loaded, err := fluent.LoadArgsYAML(flags.argsYAML)
		if err != nil {
			return nil, err
		}
		for k, v := range loaded {
			args[k] = v
		}
	}

	if flags.argsJSON != "" {
		var loaded map[string]any
		if err := json.Unmarshal([]byte(flags.argsJSON), &loaded); err != nil {
			return nil, fmt.Errorf("parse -args: %w", err)
		}
		for k, v := range loaded {
			args[k] = v
		}
	}

	return args, nil
}

// sourcesFor builds one Loader covering every path: directories walk for
// .ftl files, plain files load as-is.
func sourcesFor(paths []string) (fluent.Loader, error) {
	return fluent.LoaderFunc(func() ([]fluent.Source, error) {
		var sources []fluent.Source
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				dirSources, err := fluent.NewFileLoader(path).Load()
				if err != nil {
					return nil, err
				}
				sources = append(sources, dirSources...)
				continue
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, fluent.Source{Name: path, Text: string(raw)})
		}
		return sources, nil
	}), nil
}

// logHook traces format calls when -v is set.
type logHook struct {
	logger *log.Logger
}

func (h *logHook) BeforeFormat(fc *fluent.FormatHookContext) {
	h.logger.Printf("format locale=%s args=%d", fc.Locale, len(fc.Args))
}

func (h *logHook) AfterFormat(fc *fluent.FormatHookContext) {
	h.logger.Printf("done found=%t errors=%d result=%q", fc.Found, len(fc.Errors), fc.Result)
}
