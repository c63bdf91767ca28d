package quantity

import (
	"fmt"
	"sort"
)

// Registry maps unit names to their definitions. It is built once with the
// default table; Register calls must happen before the registry is shared
// across goroutines (one-time initialization, no locking afterwards).
type Registry struct {
	units map[string]Unit
}

// NewRegistry builds a registry populated with the default unit table: SI base
// and derived units with metric prefixes, common non-SI units, light-distance
// units and Chinese unit names.
func NewRegistry() *Registry {
	r := &Registry{units: make(map[string]Unit)}
	r.installDefaults()
	return r
}

// Unit resolves a single unit name. Compound expressions go through ParseUnit.
func (r *Registry) Unit(name string) (Unit, error) {
	u, ok := r.units[name]
	if !ok {
		return Unit{}, &UnknownUnitError{Name: name}
	}
	return u, nil
}

// Has reports whether name is a registered unit.
func (r *Registry) Has(name string) bool {
	_, ok := r.units[name]
	return ok
}

// Names returns all registered unit names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BaseUnit returns the coherent SI base unit for a dimension (kilogram, meter,
// second, ampere, kelvin, mole, candela).
func (r *Registry) BaseUnit(d Dimension) Unit {
	return r.units[baseUnitNames[d]]
}

// Register defines a new unit in terms of existing ones, e.g.
//
//	r.Register("Long", "1000 km")
//	r.Register("smoot", "1.7018 * meter", "sm")
//	r.Register("score", "20")
//
// Extra names are registered as aliases. Redefining an existing name is an
// error.
func (r *Registry) Register(name, definition string, aliases ...string) error {
	// Validate every name up front so a collision leaves no partial state.
	for _, n := range append([]string{name}, aliases...) {
		if n == "" {
			return fmt.Errorf("unit name cannot be empty")
		}
		if _, ok := r.units[n]; ok {
			return fmt.Errorf("unit %q is already defined", n)
		}
	}
	q, err := r.Parse(definition)
	if err != nil {
		return fmt.Errorf("definition of %q: %w", name, err)
	}
	if q.Unit().IsOffset() {
		return fmt.Errorf("definition of %q: offset units cannot be scaled", name)
	}
	u := Unit{
		name:   name,
		factor: q.Value() * q.unit.factor,
		dims:   q.unit.dims,
	}
	r.units[name] = u
	for _, alias := range aliases {
		au := u
		au.name = alias
		r.units[alias] = au
	}
	return nil
}

// Alias registers another name for an existing unit.
func (r *Registry) Alias(alias, target string) error {
	u, ok := r.units[target]
	if !ok {
		return &UnknownUnitError{Name: target}
	}
	if _, ok := r.units[alias]; ok {
		return fmt.Errorf("unit %q is already defined", alias)
	}
	u.name = alias
	r.units[alias] = u
	return nil
}

// define installs a unit under its long name and symbol without going through
// the expression parser. Used by the default table.
func (r *Registry) define(name, symbol string, factor, offset float64, dims Dimensions, aliases ...string) {
	u := Unit{name: name, factor: factor, offset: offset, dims: dims}
	r.units[name] = u
	if symbol != "" && symbol != name {
		su := u
		su.name = symbol
		r.units[symbol] = su
	}
	for _, alias := range aliases {
		au := u
		au.name = alias
		r.units[alias] = au
	}
}
