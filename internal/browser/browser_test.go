package browser

import (
	"errors"
	"testing"

	"github.com/renlliang3/astrobase/internal/manifest"
)

func testManifest(files ...string) manifest.Manifest {
	m := make(manifest.Manifest, len(files))
	for i, f := range files {
		m[i] = manifest.Entry{File: f}
	}
	return m
}

func TestInitialPosition(t *testing.T) {
	b := New(testManifest("a.png", "b.png", "c.png"))

	view := b.Snapshot()
	if view.Current.File != "a.png" {
		t.Errorf("initial entry = %q, want a.png", view.Current.File)
	}
	if view.Position != "1 of 3" {
		t.Errorf("initial position = %q, want \"1 of 3\"", view.Position)
	}
	if view.ActiveIndex != 0 {
		t.Errorf("initial active index = %d, want 0", view.ActiveIndex)
	}
}

func TestNextWrapsAround(t *testing.T) {
	b := New(testManifest("a.png", "b.png", "c.png"))

	entry, err := b.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if entry.File != "b.png" {
		t.Errorf("after one Next, entry = %q, want b.png", entry.File)
	}
	if pos := b.Snapshot().Position; pos != "2 of 3" {
		t.Errorf("position = %q, want \"2 of 3\"", pos)
	}

	// Two more steps wrap back to the start.
	b.Next()
	entry, err = b.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if entry.File != "a.png" {
		t.Errorf("after wrapping, entry = %q, want a.png", entry.File)
	}
	if pos := b.Snapshot().Position; pos != "1 of 3" {
		t.Errorf("position after wrap = %q, want \"1 of 3\"", pos)
	}
}

func TestPrevWrapsToLast(t *testing.T) {
	b := New(testManifest("a.png", "b.png", "c.png"))

	entry, err := b.Prev()
	if err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if entry.File != "c.png" {
		t.Errorf("Prev from first entry = %q, want c.png", entry.File)
	}
	if pos := b.Snapshot().Position; pos != "3 of 3" {
		t.Errorf("position = %q, want \"3 of 3\"", pos)
	}
}

func TestCyclicClosure(t *testing.T) {
	// N applications of Next (or Prev) return to the starting index,
	// from any starting index.
	const n = 7
	files := make([]string, n)
	for i := range files {
		files[i] = "cp.png"
	}

	for start := 0; start < n; start++ {
		b := New(testManifest(files...))
		if _, err := b.Goto(start); err != nil {
			t.Fatalf("Goto(%d): %v", start, err)
		}
		for i := 0; i < n; i++ {
			if _, err := b.Next(); err != nil {
				t.Fatalf("Next: %v", err)
			}
		}
		if idx := b.Snapshot().ActiveIndex; idx != start {
			t.Errorf("after %d Next from %d, index = %d", n, start, idx)
		}
		for i := 0; i < n; i++ {
			if _, err := b.Prev(); err != nil {
				t.Fatalf("Prev: %v", err)
			}
		}
		if idx := b.Snapshot().ActiveIndex; idx != start {
			t.Errorf("after %d Prev from %d, index = %d", n, start, idx)
		}
	}
}

func TestNextPrevInverse(t *testing.T) {
	b := New(testManifest("a.png", "b.png", "c.png", "d.png"))

	for start := 0; start < 4; start++ {
		b.Goto(start)
		b.Next()
		b.Prev()
		if idx := b.Snapshot().ActiveIndex; idx != start {
			t.Errorf("Next then Prev from %d landed on %d", start, idx)
		}
		b.Prev()
		b.Next()
		if idx := b.Snapshot().ActiveIndex; idx != start {
			t.Errorf("Prev then Next from %d landed on %d", start, idx)
		}
	}
}

func TestGotoBounds(t *testing.T) {
	b := New(testManifest("a.png", "b.png", "c.png"))

	for k := 0; k < 3; k++ {
		entry, err := b.Goto(k)
		if err != nil {
			t.Fatalf("Goto(%d): %v", k, err)
		}
		if idx := b.Snapshot().ActiveIndex; idx != k {
			t.Errorf("Goto(%d) left index at %d", k, idx)
		}
		if entry != b.Snapshot().Current {
			t.Errorf("Goto(%d) returned entry differs from snapshot", k)
		}
	}

	b.Goto(1)
	for _, k := range []int{-1, 3, 100} {
		_, err := b.Goto(k)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Goto(%d) error = %v, want ErrIndexOutOfRange", k, err)
		}
		if idx := b.Snapshot().ActiveIndex; idx != 1 {
			t.Errorf("failed Goto(%d) moved index to %d", k, idx)
		}
	}
}

func TestSingleEntry(t *testing.T) {
	b := New(testManifest("only.png"))

	for i := 0; i < 3; i++ {
		entry, err := b.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if entry.File != "only.png" {
			t.Errorf("entry = %q", entry.File)
		}
	}
	if pos := b.Snapshot().Position; pos != "1 of 1" {
		t.Errorf("position = %q, want \"1 of 1\"", pos)
	}
}

func TestEmptyManifest(t *testing.T) {
	b := New(nil)

	if _, err := b.Next(); !errors.Is(err, ErrEmptyManifest) {
		t.Errorf("Next on empty: %v, want ErrEmptyManifest", err)
	}
	if _, err := b.Prev(); !errors.Is(err, ErrEmptyManifest) {
		t.Errorf("Prev on empty: %v, want ErrEmptyManifest", err)
	}
	if _, err := b.Goto(0); !errors.Is(err, ErrEmptyManifest) {
		t.Errorf("Goto on empty: %v, want ErrEmptyManifest", err)
	}

	view := b.Snapshot()
	if view.ActiveIndex != -1 {
		t.Errorf("empty active index = %d, want -1", view.ActiveIndex)
	}
	if view.Position != "" {
		t.Errorf("empty position = %q, want empty", view.Position)
	}
	if view.Total != 0 {
		t.Errorf("empty total = %d", view.Total)
	}
}

func TestSidebarSelectionFollowsGoto(t *testing.T) {
	b := New(testManifest("a.png", "b.png", "c.png"))

	// A sidebar click for index 1 from index 0 marks exactly that
	// item active.
	if _, err := b.Goto(1); err != nil {
		t.Fatalf("Goto(1): %v", err)
	}
	view := b.Snapshot()
	if view.ActiveIndex != 1 {
		t.Errorf("active index = %d, want 1", view.ActiveIndex)
	}
	active := 0
	for i := range view.Entries {
		if i == view.ActiveIndex {
			active++
		}
	}
	if active != 1 {
		t.Errorf("%d entries marked active, want exactly 1", active)
	}
}
