package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanglongqi/uniunit/pkg/quantity"
	"github.com/wanglongqi/uniunit/pkg/system"
)

var (
	verbose  bool
	defsPath string

	// registry and customSystems are populated by PersistentPreRun and shared
	// by every command.
	registry      *quantity.Registry
	customSystems map[string]customSystem
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uniunit",
	Short: "Consistent units manager",
	Long: `uniunit converts physical quantities into a declared system of units.
A unit system maps base dimensions (mass, length, time, ...) to target units;
quantities of any compound unit are re-expressed in those units consistently.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		registry = quantity.NewRegistry()
		customSystems = map[string]customSystem{}
		if defsPath != "" {
			if err := loadDefs(registry, defsPath); err != nil {
				fatal("Error loading definitions", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&defsPath, "defs", "", "YAML file with custom unit and system definitions")
}

// resolveSystem finds a system by name: custom definitions first, then the
// built-in presets.
func resolveSystem(name string) (*system.System, error) {
	if custom, ok := customSystems[name]; ok {
		return system.New(registry, custom.Units)
	}
	return system.Preset(registry, name)
}
