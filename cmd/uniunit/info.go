package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wanglongqi/uniunit/pkg/system"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info QUANTITY",
	Short: "Show magnitude, units and base-dimension decomposition",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		q, err := registry.Parse(args[0])
		if err != nil {
			fatal("Error parsing quantity", err)
		}
		info := system.Info(q)

		if infoJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(info)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendRow(table.Row{"magnitude", info.Magnitude})
		if info.Values != nil {
			t.AppendRow(table.Row{"values", fmt.Sprint(info.Values)})
		}
		t.AppendRow(table.Row{"units", info.Unit})
		t.AppendRow(table.Row{"dimensionality", info.Dimensionality})
		t.AppendRow(table.Row{"dimensionless", info.Dimensionless})
		for _, dim := range sortedKeys(info.BaseUnits) {
			t.AppendRow(table.Row{dim, info.BaseUnits[dim]})
		}
		t.Render()
	},
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Emit JSON")
	rootCmd.AddCommand(infoCmd)
}
