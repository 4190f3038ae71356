package fluent

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source is one unit of FTL text headed for Context.AddMessages, named
// for error reporting.
type Source struct {
	Name string
	Text string
}

// Loader retrieves the FTL sources used to seed a Context.
type Loader interface {
	Load() ([]Source, error)
}

// LoaderFunc adapters allow bare functions to implement Loader.
type LoaderFunc func() ([]Source, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() ([]Source, error) {
	return fn()
}

// StaticLoader serves sources handed to it at construction, unchanged.
type StaticLoader struct {
	sources []Source
}

// NewStaticLoader wraps in-memory FTL sources in a Loader.
func NewStaticLoader(sources ...Source) *StaticLoader {
	return &StaticLoader{sources: append([]Source(nil), sources...)}
}

// Load implements Loader.
func (l *StaticLoader) Load() ([]Source, error) {
	return append([]Source(nil), l.sources...), nil
}

// FileLoader reads every .ftl file under a root directory, walking
// subdirectories. Files load in path order so installation order (and
// therefore duplicate-name overwriting) is deterministic.
type FileLoader struct {
	root string
}

// NewFileLoader builds a FileLoader rooted at dir.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{root: dir}
}

// Load implements Loader.
func (l *FileLoader) Load() ([]Source, error) {
	var paths []string
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".ftl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fluent: walk %s: %w", l.root, err)
	}
	sort.Strings(paths)

	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("fluent: read %s: %w", path, err)
		}
		sources = append(sources, Source{Name: path, Text: string(raw)})
	}
	return sources, nil
}

// LoadArgsYAML reads an external-argument bag from a YAML file, for CLI
// and test fixtures. String, integer and floating-point scalars arrive as
// the string/int/float64 kinds the resolver's argument coercion accepts;
// booleans and nulls decode as bool and nil, which it rejects as type
// errors.
func LoadArgsYAML(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fluent: read args %s: %w", path, err)
	}
	return ParseArgsYAML(raw)
}

// ParseArgsYAML decodes a YAML document into an argument bag.
func ParseArgsYAML(raw []byte) (map[string]any, error) {
	args := make(map[string]any)
	if err := yaml.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("fluent: parse args: %w", err)
	}
	return args, nil
}
