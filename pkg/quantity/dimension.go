package quantity

import (
	"fmt"
	"strings"
)

// Dimension identifies one of the seven base physical dimensions.
type Dimension int

const (
	Mass Dimension = iota
	Length
	Time
	Current
	Temperature
	Amount
	Luminosity

	numDimensions
)

var dimensionNames = [numDimensions]string{
	Mass:        "[mass]",
	Length:      "[length]",
	Time:        "[time]",
	Current:     "[current]",
	Temperature: "[temperature]",
	Amount:      "[amount]",
	Luminosity:  "[luminosity]",
}

func (d Dimension) String() string {
	if d < 0 || d >= numDimensions {
		return fmt.Sprintf("[dimension %d]", int(d))
	}
	return dimensionNames[d]
}

// dimensionTokens maps every accepted spelling of a dimension to its value.
// The short unit tokens (kg, mm, ps, ...) stand for the dimension, not the
// unit itself.
var dimensionTokens = map[string]Dimension{
	// Bracket and bare forms.
	"[mass]": Mass, "mass": Mass,
	"[length]": Length, "length": Length,
	"[time]": Time, "time": Time,
	"[current]": Current, "current": Current,
	"[temperature]": Temperature, "temperature": Temperature,
	"[amount]": Amount, "amount": Amount, "substance": Amount,
	"[luminosity]": Luminosity, "luminosity": Luminosity, "luminous_intensity": Luminosity,

	// Short unit tokens.
	"kg": Mass, "g": Mass, "mg": Mass, "ug": Mass,
	"m": Length, "km": Length, "dm": Length, "cm": Length, "mm": Length,
	"um": Length, "nm": Length, "pm": Length, "fm": Length,
	"s": Time, "ms": Time, "us": Time, "ns": Time, "ps": Time,
	"A": Current, "mA": Current, "uA": Current, "nA": Current,
	"K":   Temperature,
	"mol": Amount, "mmol": Amount, "kmol": Amount,
	"cd": Luminosity,

	// Base unit names.
	"kilogram": Mass, "gram": Mass,
	"meter": Length, "metre": Length, "centimeter": Length, "millimeter": Length,
	"second":  Time,
	"ampere":  Current,
	"kelvin":  Temperature,
	"mole":    Amount,
	"candela": Luminosity,
}

// ParseDimension resolves a dimension token. Accepted forms mirror the unit
// registry's conversion-table keys: bracket names ("[mass]"), bare names
// ("mass"), base unit names ("kilogram") and short unit symbols ("kg").
func ParseDimension(token string) (Dimension, error) {
	if d, ok := dimensionTokens[token]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown dimension token %q", token)
}

// Dimensions is an exponent vector over the seven base dimensions. The zero
// value is dimensionless.
type Dimensions [numDimensions]int

// Add returns the element-wise sum, i.e. the dimensions of a unit product.
func (d Dimensions) Add(o Dimensions) Dimensions {
	for i := range d {
		d[i] += o[i]
	}
	return d
}

// Sub returns the element-wise difference, i.e. the dimensions of a quotient.
func (d Dimensions) Sub(o Dimensions) Dimensions {
	for i := range d {
		d[i] -= o[i]
	}
	return d
}

// Scale multiplies every exponent by n, i.e. the dimensions of a power.
func (d Dimensions) Scale(n int) Dimensions {
	for i := range d {
		d[i] *= n
	}
	return d
}

// IsZero reports whether the vector is dimensionless.
func (d Dimensions) IsZero() bool {
	return d == Dimensions{}
}

// Map returns the nonzero exponents keyed by dimension name, e.g.
// {"[mass]": 1, "[length]": -1, "[time]": -2} for pressure.
func (d Dimensions) Map() map[string]int {
	out := make(map[string]int)
	for i, exp := range d {
		if exp != 0 {
			out[Dimension(i).String()] = exp
		}
	}
	return out
}

func (d Dimensions) String() string {
	if d.IsZero() {
		return "dimensionless"
	}
	var parts []string
	for i, exp := range d {
		switch {
		case exp == 0:
		case exp == 1:
			parts = append(parts, Dimension(i).String())
		default:
			parts = append(parts, fmt.Sprintf("%s ** %d", Dimension(i), exp))
		}
	}
	return strings.Join(parts, " * ")
}
