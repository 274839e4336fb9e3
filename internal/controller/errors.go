package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotReady reports that no usable session window is currently resolvable.
// This is an expected transient condition, not a failure: the target
// application may still be starting up, and callers may retry.
var ErrNotReady = errors.New("no SAP GUI session window found")

// IsNotReady reports whether err is the transient not-ready condition.
func IsNotReady(err error) bool {
	return errors.Is(err, ErrNotReady)
}

// ActivationError reports that a window never reached the foreground within
// the focus timeout. This is a hard error: injecting input into an unfocused
// window would misdirect it.
type ActivationError struct {
	Title   string
	Timeout time.Duration
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("window %q did not reach foreground within %s", e.Title, e.Timeout)
}

// CaptureError reports a screenshot failure, typically a missing OS
// screen-capture permission. Hard error, never retried: retrying cannot
// succeed until the underlying permission issue is resolved.
type CaptureError struct {
	Err error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("screenshot capture failed: %v", e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// LaunchConfigError reports missing connection parameters at launch time.
// No process is spawned when any required parameter is absent.
type LaunchConfigError struct {
	Missing []string
}

func (e *LaunchConfigError) Error() string {
	return fmt.Sprintf("missing required SAP connection parameters: %s", strings.Join(e.Missing, ", "))
}
