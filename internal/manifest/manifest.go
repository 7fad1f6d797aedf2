// Package manifest loads and parses checkplot file lists.
//
// A manifest describes an ordered collection of pre-generated diagnostic
// images ("checkplots"). The order of entries is significant: it defines
// the order in which the browser navigates them. Duplicate filenames are
// allowed; each occupies its own position.
package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Entry is one checkplot in the manifest.
type Entry struct {
	// File is the image filename or identifier, resolved against the
	// configured image base path when rendered.
	File string `json:"file"`
	// ObjectID is an optional display name for the object the
	// checkplot belongs to. Empty when the manifest carries bare
	// filenames; derived display falls back to File.
	ObjectID string `json:"objectid,omitempty"`
}

// Label returns the display name for the entry: the object id when
// present, otherwise the filename without its extension.
func (e Entry) Label() string {
	if e.ObjectID != "" {
		return e.ObjectID
	}
	base := filepath.Base(e.File)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Manifest is the ordered list of checkplot entries for a session.
// It is read-only once loaded.
type Manifest []Entry

// fileKeys are the accepted JSON keys naming the image file in an entry
// object, in priority order. Different checkplot list generators have
// used different spellings.
var fileKeys = []string{"file", "checkplot", "id"}

// objectKeys are the accepted JSON keys naming the object.
var objectKeys = []string{"objectid", "name"}

// UnmarshalJSON accepts either a bare filename string or an object
// carrying one of the recognized file keys.
func (e *Entry) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return fmt.Errorf("entry filename is empty")
		}
		e.File = s
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("entry is neither a string nor an object")
	}

	for _, key := range fileKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("entry key %q is not a string", key)
		}
		if s != "" {
			e.File = s
			break
		}
	}
	if e.File == "" {
		return fmt.Errorf("entry has no file, checkplot, or id key")
	}

	for _, key := range objectKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			e.ObjectID = s
			break
		}
	}
	return nil
}

// document is the object form of a checkplot file list, as written by
// the list command (and by the original astrobase checkplotlist tool).
type document struct {
	Checkplots []Entry `json:"checkplots"`
	NFiles     int     `json:"nfiles,omitempty"`
}

// Parse decodes manifest bytes into an ordered Manifest. The top-level
// value may be an array of entries, an array of filename strings, or an
// object with a "checkplots" array.
func Parse(data []byte, source string) (Manifest, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &LoadError{Kind: KindParseFailure, Source: source, Err: err}
	}

	switch probe.(type) {
	case []any:
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, &LoadError{Kind: KindSchemaMismatch, Source: source, Err: err}
		}
		return Manifest(entries), nil
	case map[string]any:
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, &LoadError{Kind: KindSchemaMismatch, Source: source, Err: err}
		}
		if doc.Checkplots == nil {
			return nil, &LoadError{
				Kind:   KindSchemaMismatch,
				Source: source,
				Err:    fmt.Errorf("object has no checkplots array"),
			}
		}
		return Manifest(doc.Checkplots), nil
	default:
		return nil, &LoadError{
			Kind:   KindSchemaMismatch,
			Source: source,
			Err:    fmt.Errorf("top-level value is %T, want array or object", probe),
		}
	}
}
