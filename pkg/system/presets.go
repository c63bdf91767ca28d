package system

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wanglongqi/uniunit/pkg/quantity"
)

// Config is the literal table behind a preset: a dimension-to-unit mapping
// plus a human description.
type Config struct {
	Units       map[string]string
	Description string
}

// presets is built once at process start and never mutated afterwards, so
// concurrent reads need no locking. The tables are keyed by SI base unit
// names, the form the conversion dictionaries have always used.
var presets = map[string]Config{
	"SI": {
		Units: map[string]string{
			"kilogram": "kilogram", "meter": "meter", "second": "second",
			"ampere": "ampere", "kelvin": "kelvin", "mole": "mole", "candela": "candela",
		},
		Description: "International System of Units",
	},
	"MKS": {
		Units:       map[string]string{"kilogram": "kilogram", "meter": "meter", "second": "second"},
		Description: "Meter-Kilogram-Second",
	},
	"CGS": {
		Units:       map[string]string{"kilogram": "gram", "meter": "centimeter", "second": "second"},
		Description: "Centimeter-Gram-Second",
	},
	"mmkgms": {
		Units:       map[string]string{"kilogram": "kilogram", "meter": "millimeter", "second": "millisecond"},
		Description: "Millimeter-Kilogram-Millisecond",
	},
	"mmgms": {
		Units:       map[string]string{"kilogram": "gram", "meter": "millimeter", "second": "millisecond"},
		Description: "Millimeter-Gram-Millisecond",
	},
	"nm_ug_ps": {
		Units: map[string]string{
			"kilogram": "microgram", "meter": "nanometer", "second": "picosecond",
			"ampere": "nanoampere", "kelvin": "kelvin", "mole": "nanomole", "candela": "candela",
		},
		Description: "Nanometer-Microgram-Picosecond (nano-science)",
	},
	"Imperial": {
		Units:       map[string]string{"kilogram": "pound", "meter": "inch", "second": "second"},
		Description: "Imperial units",
	},
	"FPS": {
		Units:       map[string]string{"kilogram": "pound", "meter": "foot", "second": "second"},
		Description: "Foot-Pound-Second",
	},
	"British": {
		Units:       map[string]string{"kilogram": "pound", "meter": "inch", "second": "minute"},
		Description: "British units (pound-inch-minute)",
	},
}

// UnknownPresetError reports a preset name absent from the registry. The
// lookup is case-sensitive.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("preset %q not found. Available: %s", e.Name, strings.Join(Presets(), ", "))
}

// Presets returns the preset names, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetConfig returns the literal table behind a preset. The returned maps
// are copies; callers may modify them freely.
func PresetConfig(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, &UnknownPresetError{Name: name}
	}
	units := make(map[string]string, len(cfg.Units))
	for k, v := range cfg.Units {
		units[k] = v
	}
	return Config{Units: units, Description: cfg.Description}, nil
}

// Preset builds the named preset system over reg. Each call returns a fresh
// System, so callers cannot corrupt the shared tables.
func Preset(reg *quantity.Registry, name string) (*System, error) {
	cfg, ok := presets[name]
	if !ok {
		return nil, &UnknownPresetError{Name: name}
	}
	return newSystem(reg, name, cfg.Description, cfg.Units)
}
