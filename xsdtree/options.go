package xsdtree

import (
	"github.com/jfeld/xsdtools/xsderrors"
)

// Option is a function that configures a forest build.
type Option func(*buildConfig) error

// buildConfig holds configuration for a forest build.
type buildConfig struct {
	entries     []string
	compiler    Compiler
	logger      Logger
	parallelism int
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*buildConfig, error) {
	cfg := &buildConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if len(cfg.entries) == 0 {
		return nil, &xsderrors.ConfigError{
			Option:  "EntryPaths",
			Message: "at least one entry schema path is required (use WithEntryPaths)",
		}
	}
	return cfg, nil
}

// WithEntryPaths specifies the entry schema files to discover from.
// May be given multiple times; paths accumulate.
func WithEntryPaths(paths ...string) Option {
	return func(cfg *buildConfig) error {
		cfg.entries = append(cfg.entries, paths...)
		return nil
	}
}

// WithCompiler overrides the bundled DOMCompiler with another Compiler
// implementation.
func WithCompiler(c Compiler) Option {
	return func(cfg *buildConfig) error {
		if c == nil {
			return &xsderrors.ConfigError{Option: "Compiler", Message: "compiler must not be nil"}
		}
		cfg.compiler = c
		return nil
	}
}

// WithLogger sets the structured logger used during the build.
// By default logging is disabled.
func WithLogger(l Logger) Option {
	return func(cfg *buildConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithParallelism enables concurrent root builds with the given worker
// limit. Forest order and computed paths are identical to a sequential run.
func WithParallelism(n int) Option {
	return func(cfg *buildConfig) error {
		if n < 0 {
			return &xsderrors.ConfigError{Option: "Parallelism", Message: "must not be negative"}
		}
		cfg.parallelism = n
		return nil
	}
}
