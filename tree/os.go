package tree

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jxsl13/attr-diff/model"
	"gitlab.com/tozd/go/errors"
)

const readDirBatch = 256

// OS is a tree on the local filesystem. Its root may also be a single file.
type OS struct {
	root string
}

func NewOS(root string) *OS {
	return &OS{root: root}
}

func (t *OS) Root() string {
	return t.root
}

func (t *OS) Abs(rel string) string {
	if rel == "" {
		return t.root
	}
	return filepath.Join(t.root, filepath.FromSlash(rel))
}

func (t *OS) Lstat(rel string) (model.Snapshot, error) {
	fi, err := os.Lstat(t.Abs(rel))
	if err != nil {
		return model.Snapshot{}, err
	}
	return SnapshotOf(fi), nil
}

func (t *OS) Probe(rel string) error {
	_, err := os.Lstat(t.Abs(rel))
	return err
}

func (t *OS) ReadDir(rel string) ([]string, error) {
	f, err := os.Open(t.Abs(rel))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	for {
		batch, err := f.Readdirnames(readDirBatch)
		names = append(names, batch...)
		switch {
		case errors.Is(err, io.EOF):
			return names, nil
		case err != nil:
			return names, err
		}
	}
}

// SnapshotOf converts file info of a real file or an archive header.
func SnapshotOf(fi os.FileInfo) model.Snapshot {
	return model.NewSnapshot(fi.Mode(), UserId(fi), GroupId(fi))
}
