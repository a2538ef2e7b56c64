package archive

import (
	"io"

	"github.com/bodgit/sevenzip"
)

func Walk7Zip(file io.ReaderAt, fileSize int64, walkFunc WalkFunc) error {
	r, err := sevenzip.NewReader(file, fileSize)
	if err != nil {
		return err
	}

	for _, f := range r.File {
		name := cleanName(f.Name)
		if name == "" {
			continue
		}
		err = walkFunc(name, f.FileInfo())
		if err != nil {
			return err
		}
	}
	return nil
}
