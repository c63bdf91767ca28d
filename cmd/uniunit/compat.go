package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanglongqi/uniunit/pkg/system"
)

var compatCmd = &cobra.Command{
	Use:   "compat UNIT_A UNIT_B",
	Short: "Check whether two units share the same physical dimension",
	Long: `Check dimensional compatibility of two unit expressions.
Exits 0 when the units are compatible, 1 when they are not.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := registry.ParseUnit(args[0])
		if err != nil {
			fatal("Error parsing first unit", err)
		}
		b, err := registry.ParseUnit(args[1])
		if err != nil {
			fatal("Error parsing second unit", err)
		}
		if !system.Compatible(a, b) {
			fmt.Printf("%s and %s are not compatible (%s vs %s)\n",
				args[0], args[1], a.Dimensions(), b.Dimensions())
			os.Exit(1)
		}
		fmt.Printf("%s and %s are compatible (%s)\n", args[0], args[1], a.Dimensions())
	},
}

func init() {
	rootCmd.AddCommand(compatCmd)
}
