package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds the manifest fetch. A fetch that exceeds it
// fails with KindNetworkFailure; no retry is attempted.
const DefaultTimeout = 10 * time.Second

// maxManifestSize caps how much of a response body is read (8 MB).
const maxManifestSize int64 = 8 << 20

// Loader fetches and parses checkplot manifests from a URL or a local
// file path. It performs the network call and parse only; ownership of
// the resulting Manifest passes to the caller.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with the given fetch timeout.
// A non-positive timeout selects DefaultTimeout.
func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{client: &http.Client{Timeout: timeout}}
}

// Load fetches the manifest at source (an http(s) URL or a file path)
// and parses it. Failures are classified as a LoadError; the caller
// must surface them rather than fall back to a default list.
func (l *Loader) Load(ctx context.Context, source string) (Manifest, error) {
	var (
		data []byte
		err  error
	)
	if isURL(source) {
		data, err = l.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, &LoadError{Kind: KindNetworkFailure, Source: source, Err: err}
	}
	return Parse(data, source)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return data, nil
}
