package archive

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var supportedExtensions = map[string]bool{
	".gz":  true,
	".tgz": true,
	".xz":  true,
	".txz": true,
	".tar": true,
	".zip": true,
	".7z":  true,
	".rpm": true,
}

// WalkFunc is called once per archive header. The payload of an entry is never read.
type WalkFunc func(path string, info fs.FileInfo) error

func IsSupported(path string) bool {
	_, found := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return found
}

// Walk iterates over the headers of the archive at path.
func Walk(path string, walkFunc WalkFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return errors.Errorf("not an archive: %s is a directory", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".tgz":
		return WalkTarGzip(f, walkFunc)
	case ".xz", ".txz":
		return WalkTarXz(f, walkFunc)
	case ".tar":
		return WalkTar(f, walkFunc)
	case ".zip":
		return WalkZip(f, stat.Size(), walkFunc)
	case ".7z":
		return Walk7Zip(f, stat.Size(), walkFunc)
	case ".rpm":
		return WalkRPM(f, walkFunc)
	}
	return errors.Errorf("unknown file extension: %s", ext)
}

// cleanName turns an archive member name into a relative slash path.
// Returns "" for the archive root itself.
func cleanName(name string) string {
	name = path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimPrefix(name, "/")
}
