// Package browser holds the navigation state machine for a loaded
// checkplot manifest: the current position, the goto/next/prev
// transitions, and the derived view that sidebar and position-indicator
// rendering must be computed from.
//
// The state machine holds no UI references. Consumers re-render exactly
// once after each successful transition, always from Snapshot, never
// from selection state of their own.
package browser

import (
	"errors"
	"fmt"
	"sync"

	"github.com/renlliang3/astrobase/internal/manifest"
)

var (
	// ErrEmptyManifest is returned by every navigation operation when
	// the manifest has no entries. The caller renders a placeholder
	// instead of an image; nothing panics.
	ErrEmptyManifest = errors.New("manifest has no entries")

	// ErrIndexOutOfRange is returned by Goto for an index outside
	// [0, len). The current position is left unchanged.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Browser owns the current position within a manifest. Navigation wraps
// around: Next from the last entry lands on the first, Prev from the
// first lands on the last.
//
// All methods are safe for concurrent use; a single mutex serializes
// writers so the position invariant holds without a single-threaded
// event loop.
type Browser struct {
	mu      sync.Mutex
	entries manifest.Manifest
	current int
}

// New creates a Browser positioned at the first entry. An empty
// manifest yields a degenerate browser whose navigation operations all
// return ErrEmptyManifest.
func New(m manifest.Manifest) *Browser {
	return &Browser{entries: m}
}

// Len returns the number of entries.
func (b *Browser) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Goto moves to the given index and returns its entry. Out-of-range
// indexes (including any index on an empty manifest) leave the position
// unchanged.
func (b *Browser) Goto(index int) (manifest.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return manifest.Entry{}, ErrEmptyManifest
	}
	if index < 0 || index >= len(b.entries) {
		return manifest.Entry{}, fmt.Errorf("goto %d of %d entries: %w", index, len(b.entries), ErrIndexOutOfRange)
	}
	b.current = index
	return b.entries[b.current], nil
}

// Next advances one entry, wrapping from the last back to the first.
func (b *Browser) Next() (manifest.Entry, error) {
	return b.step(1)
}

// Prev moves back one entry, wrapping from the first to the last.
func (b *Browser) Prev() (manifest.Entry, error) {
	return b.step(-1)
}

func (b *Browser) step(delta int) (manifest.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.entries)
	if n == 0 {
		return manifest.Entry{}, ErrEmptyManifest
	}
	b.current = ((b.current+delta)%n + n) % n
	return b.entries[b.current], nil
}

// View is the derived render state: everything a sidebar, image pane,
// and position indicator need. It is a pure function of the browser
// state, recomputed on every call so rendering can never drift from the
// actual position.
type View struct {
	// Entries is the full manifest, in navigation order. The sidebar
	// renders one item per entry.
	Entries []manifest.Entry
	// Current is the entry to display. Zero value when Total is 0.
	Current manifest.Entry
	// ActiveIndex is the index of the entry to mark active in the
	// sidebar, or -1 when the manifest is empty.
	ActiveIndex int
	// Total is the number of entries.
	Total int
	// Position is the one-line indicator, e.g. "3 of 17". Empty when
	// the manifest is empty.
	Position string
}

// Snapshot returns the current derived view.
func (b *Browser) Snapshot() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return View{ActiveIndex: -1}
	}
	return View{
		Entries:     b.entries,
		Current:     b.entries[b.current],
		ActiveIndex: b.current,
		Total:       len(b.entries),
		Position:    fmt.Sprintf("%d of %d", b.current+1, len(b.entries)),
	}
}
