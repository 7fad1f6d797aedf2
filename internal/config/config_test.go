package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".cpviewer.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.SortBy != "name" {
		t.Errorf("sort_by = %q, want name", cfg.SortBy)
	}
	if !cfg.LiveReload {
		t.Error("live_reload default should be true")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cpviewer.yml")
	content := []byte("image_dir: /plots\ntitle: HAT field 579\nport: 9000\nsort_by: mtime\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ImageDir != "/plots" {
		t.Errorf("image_dir = %q", cfg.ImageDir)
	}
	if cfg.Title != "HAT field 579" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.Port != 9000 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.SortBy != "mtime" {
		t.Errorf("sort_by = %q", cfg.SortBy)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CPVIEWER_PORT", "7777")
	t.Setenv("CPVIEWER_TITLE", "override")

	cfg, err := Load(filepath.Join(t.TempDir(), ".cpviewer.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7777 {
		t.Errorf("port = %d, want env override 7777", cfg.Port)
	}
	if cfg.Title != "override" {
		t.Errorf("title = %q, want env override", cfg.Title)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cpviewer.yml")

	cfg := DefaultConfig()
	cfg.ImageDir = "/plots"
	cfg.Title = "saved"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ImageDir != "/plots" || loaded.Title != "saved" {
		t.Errorf("round trip = %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty image_dir":  func(c *Config) { c.ImageDir = "" },
		"zero port":        func(c *Config) { c.Port = 0 },
		"huge port":        func(c *Config) { c.Port = 70000 },
		"bad sort key":     func(c *Config) { c.SortBy = "color" },
		"negative timeout": func(c *Config) { c.FetchTimeoutSeconds = -1 },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestManifestSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageDir = "/plots"
	if got := cfg.ManifestSource(); got != filepath.Join("/plots", DefaultManifestName) {
		t.Errorf("default manifest source = %q", got)
	}

	cfg.Manifest = "https://example.org/list.json"
	if got := cfg.ManifestSource(); got != "https://example.org/list.json" {
		t.Errorf("explicit manifest source = %q", got)
	}
}
