package quantity

import (
	"fmt"
	"strings"
)

// Unit is a compound unit expression: a multiplicative factor to coherent SI
// base units, an optional affine offset (temperature scales only) and an
// exponent vector over the base dimensions.
type Unit struct {
	name   string
	factor float64
	offset float64
	dims   Dimensions
}

// Dimensionless is the neutral unit: factor 1, no dimensions.
var Dimensionless = Unit{name: "dimensionless", factor: 1}

// Name returns the unit's display expression.
func (u Unit) Name() string {
	if u.name == "" {
		return "dimensionless"
	}
	return u.name
}

// Dimensions returns the unit's base-dimension exponent vector.
func (u Unit) Dimensions() Dimensions { return u.dims }

// IsDimensionless reports whether the unit carries no dimensions.
func (u Unit) IsDimensionless() bool { return u.dims.IsZero() }

// IsOffset reports whether the unit is affine (degC, degF). Offset units only
// take part in conversions when they stand alone with exponent 1.
func (u Unit) IsOffset() bool { return u.offset != 0 }

// Compatible reports dimensional equality with another unit.
func (u Unit) Compatible(o Unit) bool { return u.dims == o.dims }

// Mul returns the unit product. Offsets do not survive composition; callers
// must reject offset operands before combining (see the parser).
func (u Unit) Mul(o Unit) Unit {
	switch {
	case u.dims.IsZero() && u.factor == 1:
		return o
	case o.dims.IsZero() && o.factor == 1:
		return u
	}
	return Unit{
		name:   joinNames(u.Name(), o.Name(), "*"),
		factor: u.factor * o.factor,
		dims:   u.dims.Add(o.dims),
	}
}

// Div returns the unit quotient.
func (u Unit) Div(o Unit) Unit {
	return Unit{
		name:   joinNames(u.Name(), o.Name(), "/"),
		factor: u.factor / o.factor,
		dims:   u.dims.Sub(o.dims),
	}
}

// Pow raises the unit to an integer power.
func (u Unit) Pow(n int) Unit {
	switch n {
	case 1:
		return u
	case 0:
		return Dimensionless
	}
	factor := 1.0
	abs := n
	if abs < 0 {
		abs = -abs
	}
	for i := 0; i < abs; i++ {
		factor *= u.factor
	}
	if n < 0 {
		factor = 1 / factor
	}
	name := u.name
	if strings.ContainsAny(name, " */") {
		name = "(" + name + ")"
	}
	return Unit{
		name:   fmt.Sprintf("%s ** %d", name, n),
		factor: factor,
		dims:   u.dims.Scale(n),
	}
}

func (u Unit) String() string { return u.Name() }

func joinNames(a, b, op string) string {
	if a == "dimensionless" {
		a = ""
	}
	if b == "dimensionless" {
		b = "1"
	}
	if a == "" {
		if op == "/" {
			return "1 / " + b
		}
		return b
	}
	return a + " " + op + " " + b
}
