// Package catalog builds checkplot manifests from directories of image
// files and maintains an optional SQLite catalog of what was found, so
// manifests can later be regenerated from filtered subsets.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/renlliang3/astrobase/internal/manifest"
	"github.com/renlliang3/astrobase/internal/progress"
)

// DefaultPatterns match the checkplot PNGs the astrobase plotting tools
// emit. Patterns are doublestar globs applied to paths relative to the
// scan root.
var DefaultPatterns = []string{
	"checkplot-*.png",
	"checkplot-*.jpg",
	"checkplot-*.gif",
}

// Sort keys accepted by ScanConfig.SortBy.
const (
	SortByName  = "name"
	SortByMtime = "mtime"
	SortBySize  = "size"
)

// ScanConfig controls a directory scan.
type ScanConfig struct {
	Dir        string            // root directory to scan
	Patterns   []string          // glob patterns (empty = DefaultPatterns)
	SortBy     string            // name, mtime, or size (empty = name)
	Descending bool              // reverse the sort order
	Reporter   progress.Reporter // nil = no progress output
}

// ScannedEntry is a manifest entry plus the file metadata collected
// during the scan.
type ScannedEntry struct {
	manifest.Entry
	Size    int64
	ModTime time.Time
}

// Scan walks cfg.Dir, collects every file matching the configured
// patterns, and returns the entries in the configured order. The entry
// order defines the navigation order of any manifest written from the
// result.
func Scan(cfg ScanConfig) ([]ScannedEntry, error) {
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolving scan root: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", root)
	}

	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	// First pass: collect matching paths so the reporter knows the total.
	var matches []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip unreadable entries instead of aborting the scan.
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if matchesAny(rel, patterns) {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = progress.NullReporter{}
	}
	reporter.Start(len(matches))

	entries := make([]ScannedEntry, 0, len(matches))
	for i, rel := range matches {
		info, err := os.Stat(filepath.Join(root, rel))
		if err != nil {
			// File vanished between passes.
			continue
		}
		entries = append(entries, ScannedEntry{
			Entry: manifest.Entry{
				File:     filepath.ToSlash(rel),
				ObjectID: ObjectID(rel),
			},
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		reporter.Update(i+1, rel)
	}
	reporter.Finish()

	sortEntries(entries, cfg.SortBy, cfg.Descending)
	return entries, nil
}

// matchesAny reports whether rel matches any glob pattern, against
// either the full relative path or the bare filename.
func matchesAny(rel string, patterns []string) bool {
	normalized := filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pat, base); err == nil && ok {
			return true
		}
	}
	return false
}

// ObjectID derives an object name from a checkplot filename by
// stripping the conventional "checkplot-" prefix and the image
// extension. Files that do not follow the convention keep their stem.
func ObjectID(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(stem, "checkplot-")
}

func sortEntries(entries []ScannedEntry, key string, descending bool) {
	var less func(a, b ScannedEntry) bool
	switch key {
	case SortByMtime:
		less = func(a, b ScannedEntry) bool { return a.ModTime.Before(b.ModTime) }
	case SortBySize:
		less = func(a, b ScannedEntry) bool { return a.Size < b.Size }
	default:
		less = func(a, b ScannedEntry) bool { return a.File < b.File }
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if descending {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
}

// manifestDocument is the file-list shape the viewer's loader accepts.
type manifestDocument struct {
	Checkplots []manifest.Entry `json:"checkplots"`
	NFiles     int              `json:"nfiles"`
	SortKey    string           `json:"sortkey,omitempty"`
}

// WriteManifest writes the scanned entries to path as a checkplot
// file-list JSON document, in slice order.
func WriteManifest(entries []ScannedEntry, sortKey, path string) error {
	doc := manifestDocument{
		Checkplots: make([]manifest.Entry, len(entries)),
		NFiles:     len(entries),
		SortKey:    sortKey,
	}
	for i, e := range entries {
		doc.Checkplots[i] = e.Entry
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing manifest to %s: %w", path, err)
	}
	return nil
}
