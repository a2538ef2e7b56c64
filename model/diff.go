package model

import (
	"fmt"
	"strconv"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Attribute string

const (
	AttrType        Attribute = "type"
	AttrOwner       Attribute = "owner"
	AttrGroup       Attribute = "group"
	AttrPermissions Attribute = "permissions"
)

// Difference is a single differing attribute of a path present in both trees.
// LeftID and RightID carry the numeric values of owner, group and permission
// differences and are zero for type differences.
type Difference struct {
	Path      string    `yaml:"path"`
	Attribute Attribute `yaml:"attribute"`
	Left      string    `yaml:"left"`
	Right     string    `yaml:"right"`
	LeftID    int       `yaml:"left_id"`
	RightID   int       `yaml:"right_id"`
}

func TypeDifference(path string, left, right EntryType) Difference {
	return Difference{
		Path:      path,
		Attribute: AttrType,
		Left:      left.String(),
		Right:     right.String(),
	}
}

func IDDifference(path string, attr Attribute, left, right int) Difference {
	return Difference{
		Path:      path,
		Attribute: attr,
		Left:      strconv.Itoa(left),
		Right:     strconv.Itoa(right),
		LeftID:    left,
		RightID:   right,
	}
}

func PermDifference(path string, left, right int) Difference {
	return Difference{
		Path:      path,
		Attribute: AttrPermissions,
		Left:      FormatPerm(left),
		Right:     FormatPerm(right),
		LeftID:    left,
		RightID:   right,
	}
}

type OutcomeKind string

const (
	OutcomeMissing         OutcomeKind = "missing"
	OutcomeAccessDenied    OutcomeKind = "access-denied"
	OutcomeWrongParentType OutcomeKind = "wrong-parent-type"
	OutcomeOtherError      OutcomeKind = "other-error"
)

// Outcome replaces the attribute checks of a path when one side could not be examined.
type Outcome struct {
	Side Side        `yaml:"side"`
	Kind OutcomeKind `yaml:"kind"`
	Err  error       `yaml:"-"`
}

type Warning struct {
	Side Side      `yaml:"side"`
	Type EntryType `yaml:"type"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s entry has an unsupported file type", w.Side)
}

// Result holds everything the comparator found for one relative path.
type Result struct {
	Path        string       `yaml:"path"`
	Outcome     *Outcome     `yaml:"outcome,omitempty"`
	Differences []Difference `yaml:"differences,omitempty"`
	Warnings    []Warning    `yaml:"warnings,omitempty"`
}

func (r Result) Empty() bool {
	return r.Outcome == nil && len(r.Differences) == 0 && len(r.Warnings) == 0
}

type OrphanReason string

const (
	ReasonMissing      OrphanReason = "missing"
	ReasonAccessDenied OrphanReason = "access-denied"
	ReasonUnknownError OrphanReason = "unknown-error"
)

// Orphan is a right tree entry without a reachable left counterpart.
// Side tells which lookup failed: right when the right entry itself could
// not be examined, left when the counterpart is unreachable.
type Orphan struct {
	Path   string       `yaml:"path"`
	Side   Side         `yaml:"side"`
	Reason OrphanReason `yaml:"reason"`
	Err    error        `yaml:"-"`
}
