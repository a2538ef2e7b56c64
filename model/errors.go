package model

import (
	"fmt"
)

// TraversalError is a local failure below the roots. It is reported and the
// walk continues with the next sibling.
type TraversalError struct {
	Path string `yaml:"path"`
	Rel  string `yaml:"rel"`
	Op   string `yaml:"op"`
	Err  error  `yaml:"-"`
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// ConfigError aborts a run before any traversal.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Msg
}

func NewConfigError(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// RootError means one of the roots could not be examined or opened at all.
type RootError struct {
	Side Side
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("%s root %q: %v", e.Side, e.Path, e.Err)
}

func (e *RootError) Unwrap() error {
	return e.Err
}
