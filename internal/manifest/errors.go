package manifest

import (
	"errors"
	"fmt"
)

// ErrorKind classifies manifest load failures.
type ErrorKind string

const (
	// KindNetworkFailure covers transport errors: unreachable hosts,
	// non-2xx responses, timeouts, and unreadable local files.
	KindNetworkFailure ErrorKind = "network_failure"
	// KindParseFailure means the response body was not valid JSON.
	KindParseFailure ErrorKind = "parse_failure"
	// KindSchemaMismatch means the JSON was valid but did not contain
	// an array of checkplot entries in any accepted shape.
	KindSchemaMismatch ErrorKind = "schema_mismatch"
)

// LoadError is a classified failure from Loader.Load. Load failures are
// terminal for initialization: callers render an error state instead of
// substituting a default list.
type LoadError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading manifest %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Kind returns the classification of err if it is a LoadError, or ""
// otherwise.
func Kind(err error) ErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
