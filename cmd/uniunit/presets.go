package main

import (
	"encoding/json"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wanglongqi/uniunit/pkg/system"
)

var presetsJSON bool

var presetsCmd = &cobra.Command{
	Use:   "presets [NAME]",
	Short: "List preset unit systems, or show one preset's mapping",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			showPreset(args[0])
			return
		}

		if presetsJSON {
			details := make(map[string]map[string]string)
			for _, name := range system.Presets() {
				cfg, err := system.PresetConfig(name)
				if err != nil {
					fatal("Error reading preset", err)
				}
				details[name] = cfg.Units
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(details)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"name", "description", "mass", "length", "time"})
		for _, name := range system.Presets() {
			cfg, err := system.PresetConfig(name)
			if err != nil {
				fatal("Error reading preset", err)
			}
			t.AppendRow(table.Row{
				name, cfg.Description,
				cfg.Units["kilogram"], cfg.Units["meter"], cfg.Units["second"],
			})
		}
		t.Render()
	},
}

func showPreset(name string) {
	cfg, err := system.PresetConfig(name)
	if err != nil {
		fatal("Error", err)
	}
	if presetsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]any{
			"name":        name,
			"description": cfg.Description,
			"units":       cfg.Units,
		})
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"dimension", "unit"})
	for _, key := range []string{"kilogram", "meter", "second", "ampere", "kelvin", "mole", "candela"} {
		if unit, ok := cfg.Units[key]; ok {
			t.AppendRow(table.Row{key, unit})
		}
	}
	t.Render()
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "Emit JSON")
	rootCmd.AddCommand(presetsCmd)
}
