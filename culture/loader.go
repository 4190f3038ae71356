package culture

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/defaults.json
var defaultsJSON []byte

// DefaultData returns the built-in baseline table every Loader starts
// from. Mutating the returned value does not affect later calls.
func DefaultData() (*Data, error) {
	var data Data
	if err := json.Unmarshal(defaultsJSON, &data); err != nil {
		return nil, fmt.Errorf("culture: parse embedded defaults: %w", err)
	}
	return &data, nil
}

// Loader assembles a Data table from the embedded defaults, an optional
// caller-supplied JSON file, and zero or more override files applied in
// order. Later sources win per key.
type Loader struct {
	path      string
	overrides []string
}

// NewLoader builds a Loader. path may be empty to load only the embedded
// defaults.
func NewLoader(path string, overrides ...string) *Loader {
	return &Loader{path: path, overrides: overrides}
}

// Load reads and merges every configured source.
func (l *Loader) Load() (*Data, error) {
	data, err := DefaultData()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(l.overrides)+1)
	if l.path != "" {
		paths = append(paths, l.path)
	}
	paths = append(paths, l.overrides...)

	for _, path := range paths {
		layer, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		data.merge(layer)
	}

	return data, nil
}

func loadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("culture: read %s: %w", path, err)
	}
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("culture: parse %s: %w", path, err)
	}
	return &data, nil
}

// merge overlays src onto d, src winning per key.
func (d *Data) merge(src *Data) {
	if src == nil {
		return
	}
	if len(src.CurrencyCodes) > 0 {
		if d.CurrencyCodes == nil {
			d.CurrencyCodes = make(map[string]string, len(src.CurrencyCodes))
		}
		for k, v := range src.CurrencyCodes {
			d.CurrencyCodes[k] = v
		}
	}
	if len(src.SupportNumbers) > 0 {
		if d.SupportNumbers == nil {
			d.SupportNumbers = make(map[string]string, len(src.SupportNumbers))
		}
		for k, v := range src.SupportNumbers {
			d.SupportNumbers[k] = v
		}
	}
	if len(src.Measurements) > 0 {
		if d.Measurements == nil {
			d.Measurements = make(map[string]MeasurementPrefs, len(src.Measurements))
		}
		for k, v := range src.Measurements {
			d.Measurements[k] = v
		}
	}
	if len(src.DialPlans) > 0 {
		if d.DialPlans == nil {
			d.DialPlans = make(map[string]DialPlan, len(src.DialPlans))
		}
		for k, v := range src.DialPlans {
			d.DialPlans[k] = v
		}
	}
}
