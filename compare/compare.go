// Package compare produces the attribute differences of one relative path.
package compare

import (
	"github.com/jxsl13/attr-diff/model"
	"github.com/jxsl13/attr-diff/tree"
)

type Option func(*Comparator)

// WithSpecialBits includes setuid, setgid and sticky in the permission check.
func WithSpecialBits() Option {
	return func(c *Comparator) {
		c.specialBits = true
	}
}

type Comparator struct {
	left        tree.Tree
	right       tree.Tree
	specialBits bool
}

func New(left, right tree.Tree, opts ...Option) *Comparator {
	c := &Comparator{
		left:  left,
		right: right,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare snapshots rel on both sides and compares them.
func (c *Comparator) Compare(rel string) model.Result {
	l, err := c.left.Lstat(rel)
	if err != nil {
		return failed(rel, model.Left, err)
	}
	return c.CompareWith(rel, l)
}

// CompareWith compares an already taken left snapshot with the right side.
func (c *Comparator) CompareWith(rel string, left model.Snapshot) model.Result {
	r, err := c.right.Lstat(rel)
	if err != nil {
		return failed(rel, model.Right, err)
	}
	return Diff(rel, left, r, c.specialBits)
}

func failed(rel string, side model.Side, err error) model.Result {
	return model.Result{
		Path: rel,
		Outcome: &model.Outcome{
			Side: side,
			Kind: tree.OutcomeKind(err),
			Err:  err,
		},
	}
}

// Diff compares two snapshots. Every differing attribute is reported, in the
// order type, owner, group, permissions.
func Diff(rel string, l, r model.Snapshot, specialBits bool) model.Result {
	res := model.Result{Path: rel}

	switch {
	case l.Type == model.TypeUnknown || r.Type == model.TypeUnknown:
		if l.Type == model.TypeUnknown {
			res.Warnings = append(res.Warnings, model.Warning{Side: model.Left, Type: l.Type})
		}
		if r.Type == model.TypeUnknown {
			res.Warnings = append(res.Warnings, model.Warning{Side: model.Right, Type: r.Type})
		}
	case l.Type != r.Type:
		res.Differences = append(res.Differences, model.TypeDifference(rel, l.Type, r.Type))
	}

	if l.Uid != r.Uid {
		res.Differences = append(res.Differences, model.IDDifference(rel, model.AttrOwner, l.Uid, r.Uid))
	}

	if l.Gid != r.Gid {
		res.Differences = append(res.Differences, model.IDDifference(rel, model.AttrGroup, l.Gid, r.Gid))
	}

	lp, rp := model.PermDigits(l.Mode, specialBits), model.PermDigits(r.Mode, specialBits)
	if lp != rp {
		res.Differences = append(res.Differences, model.PermDifference(rel, lp, rp))
	}

	return res
}
