package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wanglongqi/uniunit/pkg/system"
)

// worksheet is the schema of the watched YAML file: a target system (preset
// name or inline mapping) and a list of quantity expressions to keep
// converted.
type worksheet struct {
	System     string            `yaml:"system"`
	Units      map[string]string `yaml:"units"`
	Quantities []string          `yaml:"quantities"`
}

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Watch a worksheet file and re-render its conversions on change",
	Long: `Watch a YAML worksheet and re-render on every change.

The worksheet names a target system (a preset or an inline mapping) and the
quantities to convert:

  system: CGS
  quantities:
    - 100 kg
    - 1 J
    - 50 m/s`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		if err := renderWorksheet(path); err != nil {
			fatal("Error rendering worksheet", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("Error creating watcher", err)
		}
		defer watcher.Close()

		// Watch the directory rather than the file: editors commonly replace
		// the file on save, which would drop a direct watch.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			fatal("Error watching directory", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		slog.Info("watching worksheet", "path", path)
		watchLoop(ctx, watcher, path)
	},
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	const debounce = 100 * time.Millisecond
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", "error", err)
		case <-pending:
			if err := renderWorksheet(path); err != nil {
				slog.Error("worksheet failed", "error", err)
			}
		}
	}
}

func renderWorksheet(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var ws worksheet
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	var sys *system.System
	switch {
	case ws.System != "":
		sys, err = resolveSystem(ws.System)
	case len(ws.Units) > 0:
		sys, err = system.New(registry, ws.Units)
	default:
		return fmt.Errorf("worksheet needs a 'system' name or a 'units' mapping")
	}
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"input", "result", "unit"})
	for _, expr := range ws.Quantities {
		q, err := registry.Parse(expr)
		if err != nil {
			t.AppendRow(table.Row{expr, "error", err.Error()})
			continue
		}
		converted, err := sys.ToUnit(q)
		if err != nil {
			t.AppendRow(table.Row{expr, "error", err.Error()})
			continue
		}
		t.AppendRow(table.Row{expr, converted.Value(), converted.Unit().Name()})
	}
	t.Render()
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
