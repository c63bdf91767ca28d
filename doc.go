// Package uniunit is a consistent units manager.
//
// It converts physical quantities into a declared target system of units: a
// mapping from base dimensions (mass, length, time, ...) to concrete unit
// names. Quantities keep their physical meaning; only the units they are
// expressed in change, uniformly across every dimension.
//
// Features:
//
//   - **Unit registry**: SI base and derived units with metric prefixes,
//     common imperial units, Chinese unit names, and user-defined units.
//   - **Unit systems**: ad-hoc `{dimension: unit}` mappings or named presets
//     (SI, MKS, CGS, Imperial, FPS, ...).
//   - **Expression parsing**: "100 kg", "9.81 m/s^2", "1e9 g*mm**2/s**2".
//   - **Introspection**: base-dimension decomposition, compatibility checks
//     and descriptive unit records.
//   - **HTTP API and CLI**: the same operations over REST (`uniunit serve`)
//     and the command line.
//
// Usage:
//
//	reg := uniunit.NewRegistry()
//
//	// Convert into an ad-hoc system.
//	sys, err := uniunit.NewSystem(reg, map[string]string{
//		"kilogram": "gram",
//		"meter":    "millimeter",
//		"second":   "second",
//	})
//	q, err := sys.ToUnit(reg.MustParse("100 kg")) // 100000 gram
//
//	// Or fetch a preset.
//	cgs, err := uniunit.Preset(reg, "CGS")
//	q, err = cgs.ToUnit(reg.MustParse("1 m")) // 100 centimeter
//
// The registry is built once and is safe for concurrent reads afterwards;
// Register calls belong in initialization, before the registry is shared.
package uniunit
