package tree

import (
	"io/fs"
	"path"
	"strings"
	"syscall"

	"github.com/jxsl13/attr-diff/model"
)

// Index is an in-memory tree of snapshots. Parent directories that were not
// added explicitly are synthesized with mode 0755 and unknown ownership.
type Index struct {
	root     string
	entries  map[string]model.Snapshot
	children map[string][]string
}

func NewIndex(root string) *Index {
	return &Index{
		root:     root,
		entries:  make(map[string]model.Snapshot, 64),
		children: make(map[string][]string, 16),
	}
}

func (x *Index) Root() string {
	return x.root
}

func (x *Index) Abs(rel string) string {
	if rel == "" {
		return x.root
	}
	return x.root + "/" + rel
}

// Add inserts or replaces the snapshot of rel.
func (x *Index) Add(rel string, s model.Snapshot) {
	rel = strings.Trim(path.Clean("/"+rel), "/")
	if rel == "" {
		return
	}
	x.ensureParents(rel)
	if _, found := x.entries[rel]; !found {
		parent := parentOf(rel)
		x.children[parent] = append(x.children[parent], path.Base(rel))
	}
	x.entries[rel] = s
}

func (x *Index) ensureParents(rel string) {
	parent := parentOf(rel)
	if parent == "" {
		return
	}
	if _, found := x.entries[parent]; found {
		return
	}
	x.Add(parent, model.NewSnapshot(fs.ModeDir|0o755, -1, -1))
}

func (x *Index) Lstat(rel string) (model.Snapshot, error) {
	if rel == "" {
		return model.NewSnapshot(fs.ModeDir|0o755, -1, -1), nil
	}
	s, found := x.entries[rel]
	if found {
		return s, nil
	}
	return model.Snapshot{}, x.missing("lstat", rel)
}

func (x *Index) Probe(rel string) error {
	_, err := x.Lstat(rel)
	return err
}

func (x *Index) ReadDir(rel string) ([]string, error) {
	if rel != "" {
		s, found := x.entries[rel]
		if !found {
			return nil, x.missing("open", rel)
		}
		if !s.IsDir() {
			return nil, &fs.PathError{Op: "open", Path: x.Abs(rel), Err: syscall.ENOTDIR}
		}
	}
	names := x.children[rel]
	return append(make([]string, 0, len(names)), names...), nil
}

// missing distinguishes a path below a non-directory from a plain missing one.
func (x *Index) missing(op, rel string) error {
	for p := parentOf(rel); p != ""; p = parentOf(p) {
		if s, found := x.entries[p]; found {
			if !s.IsDir() {
				return &fs.PathError{Op: op, Path: x.Abs(rel), Err: syscall.ENOTDIR}
			}
			break
		}
	}
	return &fs.PathError{Op: op, Path: x.Abs(rel), Err: fs.ErrNotExist}
}

func parentOf(rel string) string {
	i := strings.LastIndexByte(rel, '/')
	if i < 0 {
		return ""
	}
	return rel[:i]
}
