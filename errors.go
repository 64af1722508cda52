package main

import (
	"errors"
	"fmt"
	"strings"
)

// Process exit codes returned by main.
const (
	ExitSuccess   = 0
	ExitMismatch  = 1
	ExitConfig    = 2
	ExitExecution = 3
)

var errMissingAlgorithm = errors.New(
	"the algorithm must be provided, for example: -a sha256")

var errUnknownAlgorithm = errors.New(
	"unknown algorithm")

var errModeConflict = errors.New(
	"-predefined and -s3-corpus are mutually exclusive")

// ConfigurationError reports an invalid invocation or an unusable corpus
// location.  It is always raised before any test case runs.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return "configuration error: " + e.Msg
	}
	if e.Msg == "" {
		return "configuration error: " + e.Err.Error()
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Msg, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErrorf(err error, format string, args ...any) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// ExecutionError reports that a tool could not be launched, exited with a
// non-zero status, or produced output that could not be parsed.  The fields
// carry enough context to reproduce the invocation by hand.
type ExecutionError struct {
	Tool      string
	Algorithm string
	Path      string

	// ExitCode is -1 when the process never started or was killed.
	ExitCode int

	// Stderr holds the (possibly truncated) standard error of the tool.
	Stderr string

	Err error
}

func (e *ExecutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "error executing %s", e.Tool)
	if e.Algorithm != "" {
		fmt.Fprintf(&b, " (%s)", e.Algorithm)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " on %s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		fmt.Fprintf(&b, ": stderr: %s", s)
	}
	return b.String()
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// ParseError reports that reference tool output did not have the expected
// structure.  It points at a tool or version mismatch rather than a hashing
// bug.
type ParseError struct {
	Format DigestFormat
	Output string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to parse %s digest output (%s: %s): %q",
			e.Format, e.Reason, e.Err, e.Output)
	}
	return fmt.Sprintf("unable to parse %s digest output (%s): %q",
		e.Format, e.Reason, e.Output)
}

func (e *ParseError) Unwrap() error { return e.Err }

// exitCodeFor maps a run error to the process exit status.  A nil error is
// not expected here; the report decides between success and mismatch.
func exitCodeFor(err error) int {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return ExitConfig
	}
	return ExitExecution
}
