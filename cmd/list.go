package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/renlliang3/astrobase/internal/catalog"
	"github.com/renlliang3/astrobase/internal/config"
	"github.com/renlliang3/astrobase/internal/progress"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "Build the checkplot file list for a directory",
	Long: `Scans a directory of checkplot images and writes the JSON file list
the viewer navigates. The scan order (name, mtime, or size) becomes the
navigation order. With --catalog the scan is also recorded in a SQLite
catalog for later filtering.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().String("output", "", "manifest path (defaults to {dir}/"+config.DefaultManifestName+")")
	listCmd.Flags().String("sort", "", "sort key: name, mtime, or size")
	listCmd.Flags().Bool("desc", false, "sort in descending order")
	listCmd.Flags().String("catalog", "", "record the scan in this SQLite catalog")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.ImageDir
	if len(args) > 0 {
		dir = args[0]
	}

	sortBy := cfg.SortBy
	if flagSort, _ := cmd.Flags().GetString("sort"); flagSort != "" {
		sortBy = flagSort
	}
	descending := cfg.Descending
	if flagDesc, _ := cmd.Flags().GetBool("desc"); flagDesc {
		descending = true
	}

	entries, err := catalog.Scan(catalog.ScanConfig{
		Dir:        dir,
		Patterns:   cfg.Patterns,
		SortBy:     sortBy,
		Descending: descending,
		Reporter:   progress.NewReporter(),
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(entries) == 0 {
		fmt.Printf("No checkplot files found in %s\n", dir)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(dir, config.DefaultManifestName)
	}
	if err := catalog.WriteManifest(entries, sortBy, output); err != nil {
		return err
	}
	fmt.Printf("Wrote %d checkplots to %s\n", len(entries), output)

	catalogPath, _ := cmd.Flags().GetString("catalog")
	if catalogPath == "" {
		catalogPath = cfg.Catalog
	}
	if catalogPath != "" {
		store, err := catalog.Open(catalogPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runID, err := store.RecordScan(cmd.Context(), dir, entries)
		if err != nil {
			return fmt.Errorf("recording scan: %w", err)
		}
		fmt.Printf("Recorded scan %s in %s\n", runID, catalogPath)
	}

	return nil
}
