package uniunit

import (
	"github.com/wanglongqi/uniunit/pkg/quantity"
	"github.com/wanglongqi/uniunit/pkg/system"
)

// --- Types ---

// Quantity is a magnitude tagged with a compound unit.
type Quantity = quantity.Quantity

// Unit is a compound unit expression.
type Unit = quantity.Unit

// Dimension identifies one of the seven base physical dimensions.
type Dimension = quantity.Dimension

// Dimensions is an exponent vector over the base dimensions.
type Dimensions = quantity.Dimensions

// Registry maps unit names to definitions.
type Registry = quantity.Registry

// UnitSystem maps base dimensions to target unit names.
type UnitSystem = system.System

// UnitInfo is a descriptive record about a quantity.
type UnitInfo = system.UnitInfo

// --- Errors ---

// UnknownUnitError reports a unit name absent from the registry.
type UnknownUnitError = quantity.UnknownUnitError

// IncompatibleUnitError reports a conversion across different dimensions.
type IncompatibleUnitError = quantity.IncompatibleUnitError

// UnknownPresetError reports a preset name outside the fixed set.
type UnknownPresetError = system.UnknownPresetError

// --- Construction ---

// NewRegistry builds a unit registry populated with the default table.
func NewRegistry() *Registry {
	return quantity.NewRegistry()
}

// NewSystem builds an ad-hoc unit system over reg. Keys are dimension tokens
// ("kg", "kilogram", "[mass]"); values are target unit names.
func NewSystem(reg *Registry, units map[string]string) (*UnitSystem, error) {
	return system.New(reg, units)
}

// Preset returns a named preset system (SI, MKS, CGS, mmkgms, mmgms,
// nm_ug_ps, Imperial, FPS, British). Lookup is case-sensitive.
func Preset(reg *Registry, name string) (*UnitSystem, error) {
	return system.Preset(reg, name)
}

// Presets lists the available preset names.
func Presets() []string {
	return system.Presets()
}

// --- Helpers ---

// QuickConvert converts q between two preset systems by name.
func QuickConvert(reg *Registry, q Quantity, from, to string) (Quantity, error) {
	return system.QuickConvert(reg, q, from, to)
}

// BaseUnits returns the base-dimension decomposition of q's unit.
func BaseUnits(q Quantity) map[string]int {
	return system.BaseUnits(q)
}

// Compatible reports whether two units share a base-dimension decomposition.
func Compatible(a, b Unit) bool {
	return system.Compatible(a, b)
}

// ConvertValue rescales a bare number between two unit expressions.
func ConvertValue(reg *Registry, value float64, from, to string) (float64, error) {
	return system.ConvertValue(reg, value, from, to)
}

// Info aggregates magnitude, unit name and decomposition for q.
func Info(q Quantity) UnitInfo {
	return system.Info(q)
}
