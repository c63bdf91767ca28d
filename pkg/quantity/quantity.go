package quantity

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is a magnitude tagged with a compound unit. The magnitude is a
// scalar or a vector of scalars; conversions apply uniformly and preserve the
// container shape.
type Quantity struct {
	values []float64
	vector bool
	unit   Unit
}

// New builds a scalar quantity.
func New(value float64, unit Unit) Quantity {
	return Quantity{values: []float64{value}, unit: unit}
}

// NewVector builds a vector quantity over a copy of values.
func NewVector(values []float64, unit Unit) Quantity {
	vs := make([]float64, len(values))
	copy(vs, values)
	return Quantity{values: vs, vector: true, unit: unit}
}

// Value returns the scalar magnitude (the first element for vectors).
func (q Quantity) Value() float64 {
	if len(q.values) == 0 {
		return 0
	}
	return q.values[0]
}

// Values returns a copy of the magnitude vector. Scalars yield one element.
func (q Quantity) Values() []float64 {
	vs := make([]float64, len(q.values))
	copy(vs, q.values)
	return vs
}

// IsVector reports whether the quantity was built from a vector magnitude.
func (q Quantity) IsVector() bool { return q.vector }

// Unit returns the quantity's compound unit.
func (q Quantity) Unit() Unit { return q.unit }

// Dimensions returns the base-dimension decomposition of the quantity's unit.
func (q Quantity) Dimensions() Dimensions { return q.unit.dims }

// IsDimensionless reports whether the quantity carries no dimensions.
func (q Quantity) IsDimensionless() bool { return q.unit.dims.IsZero() }

// To converts the quantity into target, rescaling every element of the
// magnitude. It fails with *IncompatibleUnitError when the dimensions differ.
func (q Quantity) To(target Unit) (Quantity, error) {
	if q.unit.dims != target.dims {
		return Quantity{}, &IncompatibleUnitError{From: q.unit.Name(), To: target.Name()}
	}
	out := Quantity{values: make([]float64, len(q.values)), vector: q.vector, unit: target}
	for i, v := range q.values {
		si := v*q.unit.factor + q.unit.offset
		out.values[i] = (si - target.offset) / target.factor
	}
	return out, nil
}

func (q Quantity) String() string {
	mag := formatMagnitude(q)
	if q.unit.dims.IsZero() && q.unit.factor == 1 {
		return mag
	}
	return mag + " " + q.unit.Name()
}

func formatMagnitude(q Quantity) string {
	if !q.vector {
		return strconv.FormatFloat(q.Value(), 'g', -1, 64)
	}
	parts := make([]string, len(q.values))
	for i, v := range q.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// MustParse parses s against r and panics on error. Intended for literals in
// tests and examples.
func (r *Registry) MustParse(s string) Quantity {
	q, err := r.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("quantity: %v", err))
	}
	return q
}
