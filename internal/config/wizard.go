package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// countCheckplots reports how many files matching the conventional
// checkplot patterns sit directly in dir.
func countCheckplots(dir string) int {
	count := 0
	for _, pat := range DefaultPatterns {
		matches, _ := filepath.Glob(filepath.Join(dir, pat))
		count += len(matches)
	}
	return count
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to cpviewer! Let's configure your checkplot directory.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Image directory.
	dirPrompt := promptui.Prompt{
		Label:   "Checkplot image directory",
		Default: ".",
		Validate: func(input string) error {
			info, err := os.Stat(input)
			if err != nil {
				return fmt.Errorf("cannot access %s", input)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", input)
			}
			return nil
		},
	}
	dir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("image directory: %w", err)
	}
	cfg.ImageDir = dir

	if n := countCheckplots(dir); n > 0 {
		fmt.Printf("Found %d checkplot files in %s\n\n", n, dir)
	} else {
		fmt.Printf("No checkplot files found in %s yet — run `cpviewer list %s` after plotting\n\n", dir, dir)
	}

	// 2. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Viewer title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(input string) error {
			p, err := strconv.Atoi(input)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("invalid port")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 4. Sort order for generated manifests.
	sortPrompt := promptui.Select{
		Label: "Sort checkplots by",
		Items: []string{"name", "mtime", "size"},
	}
	_, sortBy, err := sortPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("sort key: %w", err)
	}
	cfg.SortBy = sortBy

	// 5. Live reload.
	reloadPrompt := promptui.Select{
		Label: "Reload the page when the manifest file changes",
		Items: []string{"yes", "no"},
	}
	_, reload, err := reloadPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("live reload: %w", err)
	}
	cfg.LiveReload = reload == "yes"

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Println("Next: `cpviewer list` to build the manifest, then `cpviewer serve`.")
	return cfg, nil
}
