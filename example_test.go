package uniunit_test

import (
	"fmt"

	"github.com/wanglongqi/uniunit"
)

func Example() {
	reg := uniunit.NewRegistry()

	sys, err := uniunit.NewSystem(reg, map[string]string{
		"kilogram": "gram",
		"meter":    "millimeter",
		"second":   "second",
	})
	if err != nil {
		panic(err)
	}

	q, err := sys.ToUnit(reg.MustParse("100 kg"))
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output: 100000 gram
}

func ExamplePreset() {
	reg := uniunit.NewRegistry()

	cgs, err := uniunit.Preset(reg, "CGS")
	if err != nil {
		panic(err)
	}
	q, err := cgs.ToUnit(reg.MustParse("1 m"))
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output: 100 centimeter
}

func ExampleQuickConvert() {
	reg := uniunit.NewRegistry()

	q, err := uniunit.QuickConvert(reg, reg.MustParse("100 kg"), "SI", "CGS")
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output: 100000 gram
}

func ExampleRegistry_Register() {
	reg := uniunit.NewRegistry()

	// A "Long" is a thousand kilometers.
	if err := reg.Register("Long", "1000 km"); err != nil {
		panic(err)
	}
	v, err := uniunit.ConvertValue(reg, 2, "Long", "m")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 2e+06
}
