// Package tree provides the metadata sources the walkers compare.
//
// A Tree is addressed by relative slash paths where "" is the root. Lstat
// never follows a trailing symbolic link.
package tree

import (
	"io/fs"
	"syscall"

	"github.com/jxsl13/attr-diff/model"
	"gitlab.com/tozd/go/errors"
)

type Tree interface {
	// Root is the root path as given by the user.
	Root() string
	// Abs joins the root with a relative path for messages and logging.
	Abs(rel string) string
	Lstat(rel string) (model.Snapshot, error)
	// Probe only checks whether rel is reachable.
	Probe(rel string) error
	// ReadDir returns the entry names of a directory in no particular order.
	// When listing fails midway the names read so far come with the error.
	ReadDir(rel string) ([]string, error)
}

// Join appends name to a relative path.
func Join(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}

type Class int

const (
	ClassOther Class = iota
	ClassNotFound
	ClassPermission
	ClassNotADirectory
)

// Classify sorts a snapshot or lookup error into the cases that are reported differently.
func Classify(err error) Class {
	switch {
	case err == nil:
		return ClassOther
	case errors.Is(err, fs.ErrNotExist):
		return ClassNotFound
	case errors.Is(err, fs.ErrPermission):
		return ClassPermission
	case errors.Is(err, syscall.ENOTDIR):
		return ClassNotADirectory
	default:
		return ClassOther
	}
}

func OutcomeKind(err error) model.OutcomeKind {
	switch Classify(err) {
	case ClassNotFound:
		return model.OutcomeMissing
	case ClassPermission:
		return model.OutcomeAccessDenied
	case ClassNotADirectory:
		return model.OutcomeWrongParentType
	default:
		return model.OutcomeOtherError
	}
}

// OrphanReason maps a failed lookup to an orphan reason. A path below a
// non-directory cannot exist, so it counts as missing.
func OrphanReason(err error) model.OrphanReason {
	switch Classify(err) {
	case ClassNotFound, ClassNotADirectory:
		return model.ReasonMissing
	case ClassPermission:
		return model.ReasonAccessDenied
	default:
		return model.ReasonUnknownError
	}
}
