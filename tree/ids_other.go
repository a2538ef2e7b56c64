//go:build !unix

package tree

import (
	"archive/tar"
	"os"

	"github.com/cavaliergopher/cpio"
)

func UserId(fi os.FileInfo) int {
	switch stat := fi.Sys().(type) {
	case *tar.Header:
		return stat.Uid
	case *cpio.Header:
		return stat.Uid
	}
	return -1
}

func GroupId(fi os.FileInfo) int {
	switch stat := fi.Sys().(type) {
	case *tar.Header:
		return stat.Gid
	case *cpio.Header:
		return stat.Guid
	}
	return -1
}
