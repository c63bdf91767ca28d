package system

import (
	"github.com/wanglongqi/uniunit/pkg/quantity"
)

// QuickConvert converts q from one preset system to another. The quantity is
// routed through the from system first, matching the two-hop conversion the
// package has always done; the from name is resolved (a bad name is an
// error) but the input is not checked to actually be expressed in that
// system's units.
func QuickConvert(reg *quantity.Registry, q quantity.Quantity, from, to string) (quantity.Quantity, error) {
	src, err := Preset(reg, from)
	if err != nil {
		return quantity.Quantity{}, err
	}
	dst, err := Preset(reg, to)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return dst.ConvertFrom(q, src)
}

// BaseUnits returns the base-dimension decomposition of q's unit, e.g.
// {"[mass]": 1, "[length]": -1, "[time]": -2} for a pressure.
func BaseUnits(q quantity.Quantity) map[string]int {
	return q.Dimensions().Map()
}

// Compatible reports whether two units decompose to the same base-dimension
// exponents. Dimensional equality only; magnitudes play no part.
func Compatible(a, b quantity.Unit) bool {
	return a.Compatible(b)
}

// ConvertValue rescales a bare number from one unit expression to another.
func ConvertValue(reg *quantity.Registry, value float64, from, to string) (float64, error) {
	fromUnit, err := reg.ParseUnit(from)
	if err != nil {
		return 0, err
	}
	toUnit, err := reg.ParseUnit(to)
	if err != nil {
		return 0, err
	}
	converted, err := quantity.New(value, fromUnit).To(toUnit)
	if err != nil {
		return 0, err
	}
	return converted.Value(), nil
}

// UnitInfo is a descriptive record about a quantity, for debugging and
// introspection rather than conversion.
type UnitInfo struct {
	Magnitude      float64        `json:"magnitude"`
	Values         []float64      `json:"values,omitempty"`
	Unit           string         `json:"units"`
	BaseUnits      map[string]int `json:"base_units"`
	Dimensionality string         `json:"dimensionality"`
	Dimensionless  bool           `json:"is_dimensionless"`
}

// Info aggregates magnitude, unit name and base-dimension decomposition.
func Info(q quantity.Quantity) UnitInfo {
	info := UnitInfo{
		Magnitude:      q.Value(),
		Unit:           q.Unit().Name(),
		BaseUnits:      BaseUnits(q),
		Dimensionality: q.Dimensions().String(),
		Dimensionless:  q.IsDimensionless(),
	}
	if q.IsVector() {
		info.Values = q.Values()
	}
	return info
}
