package archive

import (
	"archive/zip"
	"io"
)

func WalkZip(file io.ReaderAt, fileSize int64, walkFunc WalkFunc) error {
	zfs, err := zip.NewReader(file, fileSize)
	if err != nil {
		return err
	}

	for _, f := range zfs.File {
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
