// Package system re-expresses quantities in a consistent set of units.
//
// A System maps base dimensions to target unit names. Converting a quantity
// decomposes its compound unit into base-dimension exponents, substitutes the
// mapped unit for every dimension and delegates the numeric rescale to the
// unit registry.
package system

import (
	"fmt"
	"sync"

	"github.com/wanglongqi/uniunit/pkg/quantity"
)

// System is an immutable mapping from base dimensions to target unit names.
// Dimensions missing from the mapping stay in the registry's SI base unit.
// Safe for concurrent use.
type System struct {
	name  string
	desc  string
	reg   *quantity.Registry
	units [7]string // dimension index -> target unit name, "" = base unit

	mu    sync.RWMutex
	cache map[quantity.Dimensions]quantity.Unit
}

// New builds an ad-hoc system over reg. Mapping keys are dimension tokens in
// any form ParseDimension accepts ("kg", "kilogram", "[mass]", "mass"); values
// are unit expressions resolved against reg at conversion time.
func New(reg *quantity.Registry, units map[string]string) (*System, error) {
	return newSystem(reg, "", "", units)
}

func newSystem(reg *quantity.Registry, name, desc string, units map[string]string) (*System, error) {
	s := &System{
		name:  name,
		desc:  desc,
		reg:   reg,
		cache: make(map[quantity.Dimensions]quantity.Unit),
	}
	for key, unitName := range units {
		dim, err := quantity.ParseDimension(key)
		if err != nil {
			return nil, fmt.Errorf("unit system mapping: %w", err)
		}
		if unitName == "" {
			return nil, fmt.Errorf("unit system mapping: empty unit for %s", dim)
		}
		s.units[dim] = unitName
	}
	return s, nil
}

// Name returns the preset name, or "" for ad-hoc systems.
func (s *System) Name() string { return s.name }

// Description returns the preset description, or "" for ad-hoc systems.
func (s *System) Description() string { return s.desc }

// Units returns the mapping keyed by dimension name, e.g. {"[mass]": "gram"}.
func (s *System) Units() map[string]string {
	out := make(map[string]string)
	for i, name := range s.units {
		if name != "" {
			out[quantity.Dimension(i).String()] = name
		}
	}
	return out
}

// TargetUnit returns the unit u maps to under this system: the product over
// u's base dimensions of the mapped unit raised to the dimension's exponent.
// Mapped names absent from the registry surface as *quantity.UnknownUnitError
// here rather than being dropped.
func (s *System) TargetUnit(u quantity.Unit) (quantity.Unit, error) {
	dims := u.Dimensions()
	if dims.IsZero() {
		return quantity.Dimensionless, nil
	}

	s.mu.RLock()
	cached, ok := s.cache[dims]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	target := quantity.Dimensionless
	terms := 0
	for _, exp := range dims {
		if exp != 0 {
			terms++
		}
	}
	for i, exp := range dims {
		if exp == 0 {
			continue
		}
		dim := quantity.Dimension(i)
		name := s.units[dim]
		if name == "" {
			name = s.reg.BaseUnit(dim).Name()
		}
		replacement, err := s.reg.ParseUnit(name)
		if err != nil {
			return quantity.Unit{}, err
		}
		var want quantity.Dimensions
		want[dim] = 1
		if replacement.Dimensions() != want {
			return quantity.Unit{}, &quantity.IncompatibleUnitError{From: name, To: dim.String()}
		}
		if replacement.IsOffset() && (exp != 1 || terms > 1) {
			return quantity.Unit{}, fmt.Errorf("offset unit %q cannot appear in a compound target", name)
		}
		target = target.Mul(replacement.Pow(exp))
	}

	s.mu.Lock()
	s.cache[dims] = target
	s.mu.Unlock()
	return target, nil
}

// ToUnit converts q into this system. Dimensionless quantities pass through
// unchanged; vector magnitudes convert element-wise with shape preserved.
func (s *System) ToUnit(q quantity.Quantity) (quantity.Quantity, error) {
	if q.IsDimensionless() {
		return q, nil
	}
	target, err := s.TargetUnit(q.Unit())
	if err != nil {
		return quantity.Quantity{}, err
	}
	return q.To(target)
}

// ConvertFrom converts a quantity expressed in source into this system by
// routing it through source first.
func (s *System) ConvertFrom(q quantity.Quantity, source *System) (quantity.Quantity, error) {
	normalized, err := source.ToUnit(q)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return s.ToUnit(normalized)
}
