package system_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanglongqi/uniunit/pkg/quantity"
	"github.com/wanglongqi/uniunit/pkg/system"
)

func newCGSLike(t *testing.T, reg *quantity.Registry) *system.System {
	t.Helper()
	s, err := system.New(reg, map[string]string{
		"kilogram": "gram",
		"meter":    "millimeter",
		"second":   "second",
	})
	require.NoError(t, err)
	return s
}

func TestSystem_ToUnit(t *testing.T) {
	reg := quantity.NewRegistry()
	s := newCGSLike(t, reg)

	got, err := s.ToUnit(reg.MustParse("100 kg"))
	require.NoError(t, err)
	assert.InDelta(t, 100000, got.Value(), 1e-6)
	assert.Equal(t, "gram", got.Unit().Name())

	// 1 J = 1e9 g*mm^2/s^2.
	got, err = s.ToUnit(reg.MustParse("1 J"))
	require.NoError(t, err)
	assert.InDelta(t, 1e9, got.Value(), 1)

	// 1 Pa = 1e-3 g/mm/s^2.
	got, err = s.ToUnit(reg.MustParse("1 Pa"))
	require.NoError(t, err)
	assert.InDelta(t, 1e-3, got.Value(), 1e-12)
}

func TestSystem_ShortTokenKeys(t *testing.T) {
	reg := quantity.NewRegistry()

	s, err := system.New(reg, map[string]string{"kg": "g", "m": "mm", "s": "s"})
	require.NoError(t, err)
	got, err := s.ToUnit(reg.MustParse("1 kg"))
	require.NoError(t, err)
	assert.InDelta(t, 1000, got.Value(), 1e-9)
}

func TestSystem_UnmappedDimensionDefaultsToBase(t *testing.T) {
	reg := quantity.NewRegistry()

	// Only mass and length mapped; time stays in seconds.
	s, err := system.New(reg, map[string]string{"kilogram": "gram", "meter": "millimeter"})
	require.NoError(t, err)

	got, err := s.ToUnit(reg.MustParse("3 minute"))
	require.NoError(t, err)
	assert.InDelta(t, 180, got.Value(), 1e-9)
	assert.Equal(t, "second", got.Unit().Name())
}

func TestSystem_DimensionlessPassThrough(t *testing.T) {
	reg := quantity.NewRegistry()
	s := newCGSLike(t, reg)

	q := reg.MustParse("42")
	got, err := s.ToUnit(q)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.Value())
	assert.True(t, got.IsDimensionless())
}

func TestSystem_Idempotent(t *testing.T) {
	reg := quantity.NewRegistry()
	s := newCGSLike(t, reg)

	once, err := s.ToUnit(reg.MustParse("2.5 J"))
	require.NoError(t, err)
	twice, err := s.ToUnit(once)
	require.NoError(t, err)
	assert.InDelta(t, once.Value(), twice.Value(), 1e-9)
	assert.Equal(t, once.Unit().Name(), twice.Unit().Name())
}

func TestSystem_RoundTrip(t *testing.T) {
	reg := quantity.NewRegistry()

	a := newCGSLike(t, reg)
	b, err := system.New(reg, map[string]string{
		"kilogram": "pound", "meter": "foot", "second": "minute",
	})
	require.NoError(t, err)

	original := reg.MustParse("12.5 kg*m/s^2")
	inA, err := a.ToUnit(original)
	require.NoError(t, err)
	inB, err := b.ToUnit(inA)
	require.NoError(t, err)
	back, err := inB.To(original.Unit())
	require.NoError(t, err)
	assert.InDelta(t, original.Value(), back.Value(), 1e-9)
}

func TestSystem_PreservesDimension(t *testing.T) {
	reg := quantity.NewRegistry()
	s := newCGSLike(t, reg)

	for _, in := range []string{"1 kg", "1 J", "1 Pa", "50 m/s", "1 N"} {
		q := reg.MustParse(in)
		got, err := s.ToUnit(q)
		require.NoError(t, err)
		assert.True(t, system.Compatible(q.Unit(), got.Unit()), "dimension changed for %s", in)
	}
}

func TestSystem_VectorMagnitudes(t *testing.T) {
	reg := quantity.NewRegistry()
	s := newCGSLike(t, reg)

	kg, err := reg.Unit("kg")
	require.NoError(t, err)
	q := quantity.NewVector([]float64{1, 2, 3}, kg)
	got, err := s.ToUnit(q)
	require.NoError(t, err)
	require.True(t, got.IsVector())
	assert.Equal(t, []float64{1000, 2000, 3000}, got.Values())
}

func TestSystem_UnknownMappedUnitSurfacesAtToUnit(t *testing.T) {
	reg := quantity.NewRegistry()

	// Construction accepts the mapping; the bad unit name surfaces when a
	// conversion first needs it.
	s, err := system.New(reg, map[string]string{"kilogram": "blorp"})
	require.NoError(t, err)

	_, err = s.ToUnit(reg.MustParse("1 kg"))
	var unknown *quantity.UnknownUnitError
	require.True(t, errors.As(err, &unknown), "got %v", err)
	assert.Equal(t, "blorp", unknown.Name)
}

func TestSystem_BadDimensionKey(t *testing.T) {
	reg := quantity.NewRegistry()

	_, err := system.New(reg, map[string]string{"banana": "gram"})
	require.Error(t, err)
}

func TestSystem_MappedUnitMustMatchDimension(t *testing.T) {
	reg := quantity.NewRegistry()

	s, err := system.New(reg, map[string]string{"kilogram": "meter"})
	require.NoError(t, err)
	_, err = s.ToUnit(reg.MustParse("1 kg"))
	var incompatible *quantity.IncompatibleUnitError
	require.True(t, errors.As(err, &incompatible), "got %v", err)
}

func TestSystem_ConvertFrom(t *testing.T) {
	reg := quantity.NewRegistry()

	si, err := system.Preset(reg, "SI")
	require.NoError(t, err)
	cgs, err := system.Preset(reg, "CGS")
	require.NoError(t, err)

	got, err := cgs.ConvertFrom(reg.MustParse("1 m"), si)
	require.NoError(t, err)
	assert.InDelta(t, 100, got.Value(), 1e-9)
}

func TestSystem_CustomRegisteredUnit(t *testing.T) {
	reg := quantity.NewRegistry()
	require.NoError(t, reg.Register("Long", "1000 km"))

	s, err := system.New(reg, map[string]string{"meter": "Long"})
	require.NoError(t, err)
	got, err := s.ToUnit(reg.MustParse("5e6 m"))
	require.NoError(t, err)
	assert.InDelta(t, 5, got.Value(), 1e-9)
}
