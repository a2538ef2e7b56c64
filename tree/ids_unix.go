//go:build unix

package tree

import (
	"archive/tar"
	"os"
	"syscall"

	"github.com/cavaliergopher/cpio"
)

// UserId extracts the owner id from the file info of a real file or an
// archive header. Returns -1 if the source does not carry one.
func UserId(fi os.FileInfo) int {
	switch stat := fi.Sys().(type) {
	case *syscall.Stat_t:
		return int(stat.Uid)
	case *tar.Header:
		return stat.Uid
	case *cpio.Header:
		return stat.Uid
	}
	return -1
}

func GroupId(fi os.FileInfo) int {
	switch stat := fi.Sys().(type) {
	case *syscall.Stat_t:
		return int(stat.Gid)
	case *tar.Header:
		return stat.Gid
	case *cpio.Header:
		return stat.Guid
	}
	return -1
}
