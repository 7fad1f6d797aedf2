package manifest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestParseEntryObjects(t *testing.T) {
	data := []byte(`[{"id":"a"},{"id":"b"},{"id":"c"}]`)

	m, err := Parse(data, "test")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m) != 3 {
		t.Fatalf("len = %d, want 3", len(m))
	}
	if m[0].File != "a" || m[1].File != "b" || m[2].File != "c" {
		t.Errorf("entries = %+v", m)
	}
}

func TestParseFilenameStrings(t *testing.T) {
	data := []byte(`["checkplot-HAT-111.png","checkplot-HAT-222.png"]`)

	m, err := Parse(data, "test")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if m[0].File != "checkplot-HAT-111.png" {
		t.Errorf("first entry = %q", m[0].File)
	}
	if m[0].Label() != "checkplot-HAT-111" {
		t.Errorf("label = %q", m[0].Label())
	}
}

func TestParseCheckplotsObject(t *testing.T) {
	data := []byte(`{"checkplots":[{"file":"cp1.png","objectid":"HAT-579-0001"},{"file":"cp2.png"}],"nfiles":2}`)

	m, err := Parse(data, "test")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if m[0].ObjectID != "HAT-579-0001" {
		t.Errorf("objectid = %q", m[0].ObjectID)
	}
	if m[0].Label() != "HAT-579-0001" {
		t.Errorf("label = %q", m[0].Label())
	}
}

func TestParseEmptyArray(t *testing.T) {
	// An empty list is schema-valid; the empty state is handled by the
	// browser, not hidden by the loader.
	m, err := Parse([]byte(`[]`), "test")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("len = %d, want 0", len(m))
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`), "test")
	if Kind(err) != KindParseFailure {
		t.Errorf("kind = %q, want parse failure (err: %v)", Kind(err), err)
	}
}

func TestParseSchemaMismatch(t *testing.T) {
	cases := map[string]string{
		"scalar":             `42`,
		"string":             `"hello"`,
		"object no list":     `{"nfiles":3}`,
		"entry without keys": `[{"frobnicate":"x"}]`,
		"numeric entries":    `[1,2,3]`,
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc), "test"); Kind(err) != KindSchemaMismatch {
			t.Errorf("%s: kind = %q, want schema mismatch", name, Kind(err))
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkplot-filelist.json")
	if err := os.WriteFile(path, []byte(`{"checkplots":["a.png","b.png"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := NewLoader(0).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m) != 2 {
		t.Errorf("len = %d, want 2", len(m))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(0).Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	if Kind(err) != KindNetworkFailure {
		t.Errorf("kind = %q, want network failure", Kind(err))
	}
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"file":"cp.png"}]`))
	}))
	defer srv.Close()

	m, err := NewLoader(0).Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m) != 1 || m[0].File != "cp.png" {
		t.Errorf("manifest = %+v", m)
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewLoader(0).Load(context.Background(), srv.URL)
	if Kind(err) != KindNetworkFailure {
		t.Errorf("kind = %q, want network failure", Kind(err))
	}
}

func TestLoadUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewLoader(0).Load(context.Background(), url)
	if Kind(err) != KindNetworkFailure {
		t.Errorf("kind = %q, want network failure", Kind(err))
	}
}
