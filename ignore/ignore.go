// Package ignore decides which relative paths are left out of a comparison.
//
// Both walkers test the relative path of an entry ("a/b/c"), so a pattern
// behaves the same in the forward and in the reverse walk. Because the
// relative path of a child always contains the path of its parent, an
// ignored directory hides its whole subtree.
package ignore

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

type Filter struct {
	substring string
	globs     []string
}

// New creates a filter from a plain substring (may be empty) and optional
// doublestar glob patterns.
func New(substring string, globs ...string) (*Filter, error) {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return nil, errors.Errorf("invalid exclude pattern: %q", g)
		}
	}
	return &Filter{
		substring: substring,
		globs:     globs,
	}, nil
}

// Ignored reports whether rel is excluded from traversal and reporting.
// A nil filter ignores nothing.
func (f *Filter) Ignored(rel string) bool {
	if f == nil {
		return false
	}
	if IsIgnored(rel, f.substring) {
		return true
	}
	for _, g := range f.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

// IsIgnored is the plain substring test. An empty pattern matches nothing.
func IsIgnored(candidate, pattern string) bool {
	return pattern != "" && strings.Contains(candidate, pattern)
}
