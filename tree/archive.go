package tree

import (
	"io/fs"

	"github.com/jxsl13/attr-diff/archive"
	"gitlab.com/tozd/go/errors"
)

// IsArchive reports whether path has an archive extension that OpenArchive understands.
func IsArchive(path string) bool {
	return archive.IsSupported(path)
}

// OpenArchive reads the headers of an archive into an Index.
func OpenArchive(path string) (*Index, error) {
	x := NewIndex(path)
	err := archive.Walk(path, func(name string, info fs.FileInfo) error {
		x.Add(name, SnapshotOf(info))
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("failed to read archive %s: %w", path, err)
	}
	return x, nil
}
