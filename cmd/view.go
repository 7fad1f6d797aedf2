package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renlliang3/astrobase/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse checkplots in the terminal",
	Long: `Opens a terminal browser over the configured manifest: the sidebar
list on the left, the current checkplot's details on the right, arrow
keys for prev/next. Unlike serve, a manifest load failure is fatal here
since there is no page to show an error state in.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := loadManifest(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("run `cpviewer list %s` first: %w", cfg.ImageDir, err)
	}

	model := tui.New(cfg.Title, cfg.ImageDir, entries)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
