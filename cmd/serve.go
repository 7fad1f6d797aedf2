package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/renlliang3/astrobase/internal/viewer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the checkplot viewer page",
	Long: `Starts a local HTTP server with the single-page checkplot viewer:
the manifest in the sidebar, one image at a time, prev/next and arrow-key
navigation. If the manifest cannot be loaded the page shows the error and
keeps navigation disabled instead of exiting.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().Bool("open", false, "open the viewer in the browser")
	serveCmd.Flags().Bool("no-reload", false, "disable manifest live reload")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	if noReload, _ := cmd.Flags().GetBool("no-reload"); noReload {
		cfg.LiveReload = false
	}

	source := cfg.ManifestSource()
	entries, loadErr := loadManifest(cmd.Context(), cfg)
	if loadErr != nil {
		// Not fatal: the page renders the error state, and live reload
		// can pick up a fixed manifest.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", loadErr)
		fmt.Fprintf(os.Stderr, "The viewer will show the load error. Run `cpviewer list %s` to build the manifest.\n", cfg.ImageDir)
	} else {
		fmt.Printf("Loaded %d checkplots from %s\n", len(entries), source)
	}

	srv := viewer.New(viewer.Config{
		Port:         cfg.Port,
		Title:        cfg.Title,
		ImageDir:     cfg.ImageDir,
		Source:       source,
		AboutFile:    cfg.AboutFile,
		LiveReload:   cfg.LiveReload,
		CORSAllowAll: cfg.CORSAllowAll,
	}, newLoader(cfg), entries, loadErr)

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	fmt.Printf("Serving checkplots at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")
	return srv.Start()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
