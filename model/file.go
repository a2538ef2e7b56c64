package model

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

type EntryType int

const (
	TypeUnknown EntryType = iota
	TypeFile
	TypeDir
	TypeSymlink
)

func (t EntryType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "directory"
	case TypeSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

func (t EntryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TypeOf maps a file mode to the entry types that are compared.
// Devices, sockets and pipes are unknown.
func TypeOf(mode fs.FileMode) EntryType {
	switch {
	case mode.IsRegular():
		return TypeFile
	case mode.IsDir():
		return TypeDir
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	default:
		return TypeUnknown
	}
}

// Snapshot is the metadata of a single entry, taken without following symlinks.
// Uid and Gid are -1 when the source does not record ownership.
type Snapshot struct {
	Type EntryType
	Mode fs.FileMode
	Uid  int
	Gid  int
}

func NewSnapshot(mode fs.FileMode, uid, gid int) Snapshot {
	return Snapshot{
		Type: TypeOf(mode),
		Mode: mode,
		Uid:  uid,
		Gid:  gid,
	}
}

func (s Snapshot) IsDir() bool {
	return s.Type == TypeDir
}

// Perm returns the rwx bits as the decimal digits of their octal notation: 0755 -> 755.
func (s Snapshot) Perm() int {
	return PermDigits(s.Mode, false)
}

// PermSpecial is Perm prefixed with the setuid/setgid/sticky digit: 04755 -> 4755.
func (s Snapshot) PermSpecial() int {
	return PermDigits(s.Mode, true)
}

func (s Snapshot) PermString() string {
	return s.Mode.Perm().String()
}

func PermDigits(mode fs.FileMode, special bool) int {
	p := int(mode.Perm())
	digits := (p>>6&7)*100 + (p>>3&7)*10 + p&7
	if !special {
		return digits
	}

	s := 0
	if mode&os.ModeSetuid != 0 {
		s |= 4
	}
	if mode&os.ModeSetgid != 0 {
		s |= 2
	}
	if mode&os.ModeSticky != 0 {
		s |= 1
	}
	return s*1000 + digits
}

// FormatPerm renders a digit encoded permission with leading zeros, e.g. 44 -> "044".
func FormatPerm(digits int) string {
	if digits >= 1000 {
		return strconv.Itoa(digits)
	}
	return fmt.Sprintf("%03d", digits)
}
