package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"

	"github.com/ulikunitz/xz"
	"gitlab.com/tozd/go/errors"
)

func WalkTarGzip(file io.Reader, walkFunc WalkFunc) error {
	gr, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer gr.Close()

	return WalkTar(gr, walkFunc)
}

func WalkTarXz(file io.Reader, walkFunc WalkFunc) error {
	xr, err := xz.NewReader(file)
	if err != nil {
		return err
	}
	return WalkTar(xr, walkFunc)
}

// WalkTar may be passed a compressed reader instead of an explicit file
func WalkTar(file io.Reader, walkFunc WalkFunc) error {

	tr := tar.NewReader(file)

	for {
		// defines a sub error in the loop scope
		header, err := tr.Next()

		switch {
		// if no more files are found return
		case errors.Is(err, io.EOF):
			return nil

		// return any other error
		case err != nil:
			return err

		// if the header is nil, just skip it (not sure how this happens)
		case header == nil:
			continue
		}

		name := cleanName(header.Name)
		if name == "" {
			continue
		}

		switch header.Typeflag {
		case tar.TypeXGlobalHeader, tar.TypeXHeader:
			continue
		case tar.TypeLink:
			// hard links share the metadata of their target, which is a regular file
			h := *header
			h.Typeflag = tar.TypeReg
			err = walkFunc(name, h.FileInfo())
		default:
			err = walkFunc(name, header.FileInfo())
		}
		if err != nil {
			return err
		}
	}
}
