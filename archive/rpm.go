package archive

import (
	"compress/gzip"
	"io"

	"github.com/cavaliergopher/cpio"
	"github.com/cavaliergopher/rpm"

	"github.com/ulikunitz/xz"
	"gitlab.com/tozd/go/errors"
)

func WalkRPM(file io.Reader, walkFunc WalkFunc) error {
	// Read the package headers
	pkg, err := rpm.Read(file)
	if err != nil {
		return err
	}

	// Check the archive format of the payload
	if format := pkg.PayloadFormat(); format != "cpio" {
		return errors.Errorf("unsupported payload format: %s", format)
	}

	var compReader io.Reader

	switch format := pkg.PayloadCompression(); format {
	case "xz":
		compReader, err = xz.NewReader(file)
	case "gzip":
		compReader, err = gzip.NewReader(file)
	default:
		return errors.Errorf("unsupported rpm compression format: %s", format)
	}
	if err != nil {
		return err
	}

	// Attach a reader to iterate the headers of the payload
	cpioReader := cpio.NewReader(compReader)
	for {
		header, err := cpioReader.Next()
		switch {
		// if no more files are found return
		case errors.Is(err, io.EOF):
			return nil

		// return any other error
		case err != nil:
			return err
		}

		name := cleanName(header.Name)
		if name == "" {
			continue
		}

		err = walkFunc(name, header.FileInfo())
		if err != nil {
			return err
		}
	}
}
