package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanglongqi/uniunit/pkg/quantity"
	"github.com/wanglongqi/uniunit/pkg/system"
)

var (
	convertToSystem string
	convertToUnit   string
	convertUnits    []string
	convertJSON     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert QUANTITY",
	Short: "Convert a quantity into a unit, a preset system, or an ad-hoc system",
	Long: `Convert a quantity expression into other units.

Examples:
  uniunit convert "100 kg" --to-system CGS
  uniunit convert "1 J" --units kilogram=gram,meter=millimeter
  uniunit convert "50 m/s" --to km/h`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		q, err := registry.Parse(args[0])
		if err != nil {
			fatal("Error parsing quantity", err)
		}

		var converted quantity.Quantity
		switch {
		case convertToUnit != "":
			target, err := registry.ParseUnit(convertToUnit)
			if err != nil {
				fatal("Error resolving target unit", err)
			}
			converted, err = q.To(target)
			if err != nil {
				fatal("Error converting", err)
			}
		case len(convertUnits) > 0:
			mapping, err := parseMapping(convertUnits)
			if err != nil {
				fatal("Error parsing --units", err)
			}
			sys, err := system.New(registry, mapping)
			if err != nil {
				fatal("Error building unit system", err)
			}
			converted, err = sys.ToUnit(q)
			if err != nil {
				fatal("Error converting", err)
			}
		case convertToSystem != "":
			sys, err := resolveSystem(convertToSystem)
			if err != nil {
				fatal("Error resolving system", err)
			}
			converted, err = sys.ToUnit(q)
			if err != nil {
				fatal("Error converting", err)
			}
		default:
			fatal("Error", errors.New("one of --to, --to-system or --units is required"))
		}

		if convertJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(map[string]any{
				"input":  args[0],
				"result": converted.Value(),
				"unit":   converted.Unit().Name(),
			})
			return
		}
		fmt.Println(converted)
	},
}

// parseMapping turns "kilogram=gram,meter=millimeter" pairs into a mapping.
func parseMapping(pairs []string) (map[string]string, error) {
	mapping := make(map[string]string)
	for _, pair := range pairs {
		for _, entry := range strings.Split(pair, ",") {
			key, value, ok := strings.Cut(entry, "=")
			if !ok {
				return nil, fmt.Errorf("expected dimension=unit, got %q", entry)
			}
			mapping[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return mapping, nil
}

func init() {
	convertCmd.Flags().StringVar(&convertToSystem, "to-system", "", "Target preset or custom system name")
	convertCmd.Flags().StringVar(&convertToUnit, "to", "", "Target unit expression")
	convertCmd.Flags().StringSliceVar(&convertUnits, "units", nil, "Ad-hoc system mapping, dimension=unit pairs")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Emit JSON")
	rootCmd.AddCommand(convertCmd)
}
