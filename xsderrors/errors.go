// Package xsderrors provides structured error types for xsdtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the single fatal
// configuration case and the non-fatal warning categories that a best-effort
// run accumulates.
//
// # Error Categories
//
//   - ConfigError: no usable entry paths or invalid options; the only fatal case
//   - DiscoveryError: a schema file could not be opened, parsed, or resolved
//     during reference discovery
//   - PrefixError: a file's namespace declarations could not be read
//   - CompileError: a structural schema error reported by the compiler
//
// # Usage with errors.Is
//
//	forest, err := xsdtree.BuildForest(xsdtree.WithEntryPaths(paths...))
//	if errors.Is(err, xsderrors.ErrConfig) {
//	    // nothing usable was supplied; there is no partial result
//	}
//	for _, warn := range forest.Warnings {
//	    var discErr *xsderrors.DiscoveryError
//	    if errors.As(warn, &discErr) {
//	        log.Printf("skipped %s", discErr.Path)
//	    }
//	}
package xsderrors

import (
	"errors"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates an invalid configuration or missing input.
	ErrConfig = errors.New("configuration error")

	// ErrDiscovery indicates a schema file discovery failure.
	ErrDiscovery = errors.New("discovery error")

	// ErrPrefix indicates a namespace declaration scan failure.
	ErrPrefix = errors.New("prefix resolution error")

	// ErrCompile indicates a structural schema compilation failure.
	ErrCompile = errors.New("compilation error")
)

// IsFatal reports whether err aborts a run entirely. Only configuration
// errors are fatal; every other category is a warning on a best-effort
// result.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfig)
}

// ConfigError represents an invalid configuration or input.
// This is the only fatal error category: it aborts a run before any
// traversal begins.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// DiscoveryError represents a non-fatal failure while discovering schema
// files. The affected file, and anything only reachable through it, is
// absent from the discovered set; overall discovery continues.
type DiscoveryError struct {
	// Path is the file that could not be opened, parsed, or resolved
	Path string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DiscoveryError) Error() string {
	msg := "discovery error"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DiscoveryError) Is(target error) bool {
	return target == ErrDiscovery
}

// PrefixError represents a non-fatal failure to read a file's namespace
// declarations. That file simply contributes no prefix mappings.
type PrefixError struct {
	// Path is the file whose root element could not be scanned
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PrefixError) Error() string {
	msg := "prefix resolution error"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PrefixError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PrefixError) Is(target error) bool {
	return target == ErrPrefix
}

// CompileError represents a non-fatal structural schema error. Compilation
// continues in best-effort mode and may yield an incomplete global
// element/type/group set, which in turn yields a smaller or shallower
// output forest.
type CompileError struct {
	// Path is the schema file that failed to compile
	Path string
	// Message describes the structural problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *CompileError) Error() string {
	msg := "compilation error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}
