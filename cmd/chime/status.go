package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/chime-cli/chime/internal/settings"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installed notification hooks",
	Long: `Show which notification hooks are installed, whether they play a sound,
and the capabilities of the current platform.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	store, err := newStore(log)
	if err != nil {
		return err
	}

	registry := newRegistry(cfg)

	var info settings.PlatformInfo
	if strategy, resolveErr := registry.Resolve(); resolveErr == nil {
		info = strategy
	}

	report, err := store.Analyze(info)
	if err != nil {
		return errors.Wrap(err, "failed to analyze settings")
	}

	printStatus(store.Path(), report)

	return nil
}

// printStatus renders the analysis report.
func printStatus(path string, report *settings.Report) {
	header := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Faint(true)

	fmt.Println(header.Render("chime status"))
	fmt.Printf("  settings: %s\n", path)

	if report.Platform == "" {
		fmt.Println("  platform: unsupported")
	} else {
		fmt.Printf("  platform: %s (sound: %s)\n", report.Platform, yesNo(report.SupportsSound))
	}

	if fi, err := os.Stat(path + settings.BackupSuffix); err == nil {
		fmt.Printf("  backup:   %s\n", dim.Render(humanize.Time(fi.ModTime())))
	}

	fmt.Println()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	table.Header([]string{"Event", "Installed", "Sound"})

	for _, status := range report.Events {
		_ = table.Append([]string{
			status.Event.String(),
			yesNo(status.Installed),
			yesNo(status.Sound),
		})
	}

	_ = table.Render()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
