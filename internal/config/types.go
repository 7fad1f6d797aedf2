package config

// Config is the top-level cpviewer configuration, corresponding to
// .cpviewer.yml.
type Config struct {
	// ImageDir is the directory of checkplot images, also the default
	// scan root for the list command.
	ImageDir string `yaml:"image_dir" koanf:"image_dir"`
	// Manifest is the path or URL of the checkplot file list. When
	// empty, {image_dir}/checkplot-filelist.json is used.
	Manifest string `yaml:"manifest" koanf:"manifest"`
	// Title is shown in the viewer page header and TUI.
	Title string `yaml:"title" koanf:"title"`
	// Port for the viewer HTTP server.
	Port int `yaml:"port" koanf:"port"`
	// Patterns are the scan globs for the list command.
	Patterns []string `yaml:"patterns" koanf:"patterns"`
	// SortBy orders scanned entries: name, mtime, or size.
	SortBy string `yaml:"sort_by" koanf:"sort_by"`
	// Descending reverses the scan order.
	Descending bool `yaml:"descending" koanf:"descending"`
	// Catalog is an optional SQLite catalog path recorded by the list
	// command and queried by the filter command.
	Catalog string `yaml:"catalog" koanf:"catalog"`
	// AboutFile is an optional markdown file rendered at /about.
	AboutFile string `yaml:"about_file" koanf:"about_file"`
	// FetchTimeoutSeconds bounds the manifest fetch; a timeout is
	// reported as a load failure, never retried silently.
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
	// LiveReload enables the manifest file watcher and the reload
	// websocket on the viewer page.
	LiveReload bool `yaml:"live_reload" koanf:"live_reload"`
	// CORSAllowAll opens the API to any origin (dev mode).
	CORSAllowAll bool `yaml:"cors_allow_all" koanf:"cors_allow_all"`
}
