package config

// DefaultManifestName is the file-list name the list command writes and
// the serve command looks for inside the image directory.
const DefaultManifestName = "checkplot-filelist.json"

// DefaultPatterns match the filenames the astrobase checkplot plotting
// tools produce.
var DefaultPatterns = []string{
	"checkplot-*.png",
	"checkplot-*.jpg",
	"checkplot-*.gif",
}

// validSortKeys is the set of recognized sort_by values.
var validSortKeys = map[string]bool{
	"name":  true,
	"mtime": true,
	"size":  true,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ImageDir:            ".",
		Title:               "Checkplot viewer",
		Port:                8080,
		Patterns:            DefaultPatterns,
		SortBy:              "name",
		FetchTimeoutSeconds: 10,
		LiveReload:          true,
	}
}
