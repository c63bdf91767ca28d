package system_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanglongqi/uniunit/pkg/quantity"
	"github.com/wanglongqi/uniunit/pkg/system"
)

func TestQuickConvert(t *testing.T) {
	reg := quantity.NewRegistry()

	got, err := system.QuickConvert(reg, reg.MustParse("100 kg"), "SI", "CGS")
	require.NoError(t, err)
	assert.InDelta(t, 100000, got.Value(), 1e-6)
	assert.Equal(t, "gram", got.Unit().Name())

	_, err = system.QuickConvert(reg, reg.MustParse("1 kg"), "nope", "CGS")
	var unknown *system.UnknownPresetError
	require.True(t, errors.As(err, &unknown), "got %v", err)
}

func TestBaseUnits(t *testing.T) {
	reg := quantity.NewRegistry()

	assert.Equal(t,
		map[string]int{"[mass]": 1, "[length]": -1, "[time]": -2},
		system.BaseUnits(reg.MustParse("1 Pa")))
	assert.Equal(t, map[string]int{}, system.BaseUnits(reg.MustParse("3")))
}

func TestCompatible(t *testing.T) {
	reg := quantity.NewRegistry()

	kg := reg.MustParse("1 kg").Unit()
	g := reg.MustParse("1 g").Unit()
	m := reg.MustParse("1 m").Unit()
	assert.True(t, system.Compatible(kg, g))
	assert.False(t, system.Compatible(kg, m))

	// Derived units compare by decomposition, not by name.
	wh := reg.MustParse("1 Wh").Unit()
	j := reg.MustParse("1 J").Unit()
	assert.True(t, system.Compatible(wh, j))
}

func TestConvertValue(t *testing.T) {
	reg := quantity.NewRegistry()

	got, err := system.ConvertValue(reg, 100, "kg", "g")
	require.NoError(t, err)
	assert.InDelta(t, 100000, got, 1e-6)

	got, err = system.ConvertValue(reg, 1, "m/s", "km/h")
	require.NoError(t, err)
	assert.InDelta(t, 3.6, got, 1e-9)

	_, err = system.ConvertValue(reg, 1, "kg", "m")
	var incompatible *quantity.IncompatibleUnitError
	require.True(t, errors.As(err, &incompatible), "got %v", err)
}

func TestInfo(t *testing.T) {
	reg := quantity.NewRegistry()

	info := system.Info(reg.MustParse("100 kg"))
	assert.Equal(t, 100.0, info.Magnitude)
	assert.Equal(t, "kg", info.Unit)
	assert.Equal(t, map[string]int{"[mass]": 1}, info.BaseUnits)
	assert.Equal(t, "[mass]", info.Dimensionality)
	assert.False(t, info.Dimensionless)
	assert.Nil(t, info.Values)

	kg, err := reg.Unit("kg")
	require.NoError(t, err)
	vec := system.Info(quantity.NewVector([]float64{1, 2}, kg))
	assert.Equal(t, []float64{1, 2}, vec.Values)

	n := system.Info(reg.MustParse("5"))
	assert.True(t, n.Dimensionless)
}
