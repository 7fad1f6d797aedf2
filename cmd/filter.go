package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/renlliang3/astrobase/internal/catalog"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Write a manifest for a filtered subset of a recorded scan",
	Long: `Selects checkplots from the SQLite catalog written by
` + "`cpviewer list --catalog`" + ` and writes them as a new manifest, preserving
the original scan order. Filters: an object-id glob and modification
time bounds.`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().String("catalog", "", "catalog database path (defaults to the configured one)")
	filterCmd.Flags().String("run", "", "scan run id (defaults to the latest run)")
	filterCmd.Flags().String("objectid", "", "object-id glob, e.g. 'HAT-579-*'")
	filterCmd.Flags().String("since", "", "only files modified at or after this time (RFC 3339)")
	filterCmd.Flags().String("until", "", "only files modified at or before this time (RFC 3339)")
	filterCmd.Flags().Int("limit", 0, "maximum number of entries")
	filterCmd.Flags().String("output", "checkplot-filelist-filtered.json", "manifest path to write")
	rootCmd.AddCommand(filterCmd)
}

func parseTimeFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("parsing --%s: %w", name, err)
	}
	return &t, nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalogPath, _ := cmd.Flags().GetString("catalog")
	if catalogPath == "" {
		catalogPath = cfg.Catalog
	}
	if catalogPath == "" {
		return fmt.Errorf("no catalog configured: pass --catalog or set catalog in %s", cfgFile)
	}

	since, err := parseTimeFlag(cmd, "since")
	if err != nil {
		return err
	}
	until, err := parseTimeFlag(cmd, "until")
	if err != nil {
		return err
	}

	store, err := catalog.Open(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, _ := cmd.Flags().GetString("run")
	objectGlob, _ := cmd.Flags().GetString("objectid")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.Query(cmd.Context(), catalog.Filter{
		RunID:          runID,
		ObjectGlob:     objectGlob,
		ModifiedAfter:  since,
		ModifiedBefore: until,
		Limit:          limit,
	})
	if err != nil {
		return fmt.Errorf("querying catalog: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if err := catalog.WriteManifest(entries, "", output); err != nil {
		return err
	}
	fmt.Printf("Wrote %d checkplots to %s\n", len(entries), output)
	return nil
}
