// Package walk pairs two trees and feeds the findings to a report sink.
//
// The forward walk follows the shape of the left tree and compares the
// attributes of every entry with its right counterpart. The reverse walk
// follows the shape of the right tree and only looks for entries without a
// left counterpart. Both are depth first, single threaded and never read a
// whole tree into memory.
package walk

import (
	"context"

	"github.com/jxsl13/attr-diff/compare"
	"github.com/jxsl13/attr-diff/ignore"
	"github.com/jxsl13/attr-diff/model"
	"github.com/jxsl13/attr-diff/report"
	"github.com/jxsl13/attr-diff/tree"
	"github.com/rs/zerolog"
)

type Option func(*Walker)

func WithFilter(f *ignore.Filter) Option {
	return func(w *Walker) {
		w.filter = f
	}
}

// WithMaxDepth limits recursion. Entries of the roots have depth 1, zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		w.maxDepth = depth
	}
}

func WithCompareOptions(opts ...compare.Option) Option {
	return func(w *Walker) {
		w.compareOpts = append(w.compareOpts, opts...)
	}
}

type Walker struct {
	left  tree.Tree
	right tree.Tree
	sink  report.Sink

	filter      *ignore.Filter
	maxDepth    int
	compareOpts []compare.Option
	cmp         *compare.Comparator
}

func New(left, right tree.Tree, sink report.Sink, opts ...Option) *Walker {
	w := &Walker{
		left:  left,
		right: right,
		sink:  sink,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.cmp = compare.New(left, right, w.compareOpts...)
	return w
}

func (w *Walker) descend(depth int) bool {
	return w.maxDepth == 0 || depth < w.maxDepth
}

// Forward walks the left tree and compares every entry with the right tree.
// Only a failure to open the left root is returned, every other problem is
// reported to the sink.
func (w *Walker) Forward(ctx context.Context) error {
	return w.forward(ctx, "", 1)
}

func (w *Walker) forward(ctx context.Context, rel string, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log := zerolog.Ctx(ctx)
	dir := w.left.Abs(rel)
	log.Debug().Str("dir", dir).Msg("entering directory")

	names, readErr := w.left.ReadDir(rel)
	if readErr != nil && len(names) == 0 {
		if rel == "" {
			return &model.RootError{Side: model.Left, Path: dir, Err: readErr}
		}
		w.sink.Error(model.TraversalError{Path: dir, Rel: rel, Op: "open", Err: readErr})
		return nil
	}
	// a listing that broke off is walked as far as it got, then reported
	if readErr != nil {
		defer w.sink.Error(model.TraversalError{Path: dir, Rel: rel, Op: "read", Err: readErr})
	}

	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		work := tree.Join(rel, name)
		if w.filter.Ignored(work) {
			log.Trace().Str("path", work).Msg("ignored")
			continue
		}
		log.Trace().Str("path", work).Msg("comparing")

		l, err := w.left.Lstat(work)
		if err != nil {
			w.sink.Error(model.TraversalError{Path: w.left.Abs(work), Rel: work, Op: "stat", Err: err})
			continue
		}

		if res := w.cmp.CompareWith(work, l); !res.Empty() {
			w.sink.Result(res)
		}

		if l.IsDir() && w.descend(depth) {
			if err := w.forward(ctx, work, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reverse walks the right tree and reports entries the left tree lacks.
// Only a failure to open the right root is returned.
func (w *Walker) Reverse(ctx context.Context) error {
	return w.reverse(ctx, "", 1)
}

func (w *Walker) reverse(ctx context.Context, rel string, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log := zerolog.Ctx(ctx)
	dir := w.right.Abs(rel)
	log.Debug().Str("dir", dir).Msg("entering directory (reverse)")

	names, readErr := w.right.ReadDir(rel)
	if readErr != nil && len(names) == 0 {
		if rel == "" {
			return &model.RootError{Side: model.Right, Path: dir, Err: readErr}
		}
		w.sink.Error(model.TraversalError{Path: dir, Rel: rel, Op: "open", Err: readErr})
		return nil
	}
	// a listing that broke off is walked as far as it got, then reported
	if readErr != nil {
		defer w.sink.Error(model.TraversalError{Path: dir, Rel: rel, Op: "read", Err: readErr})
	}

	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		work := tree.Join(rel, name)
		if w.filter.Ignored(work) {
			log.Trace().Str("path", work).Msg("ignored")
			continue
		}

		r, err := w.right.Lstat(work)
		if err != nil {
			w.sink.Orphan(model.Orphan{Path: work, Side: model.Right, Reason: tree.OrphanReason(err), Err: err})
			continue
		}

		if err := w.left.Probe(work); err != nil {
			log.Trace().Str("path", work).Err(err).Msg("orphan")
			w.sink.Orphan(model.Orphan{Path: work, Side: model.Left, Reason: tree.OrphanReason(err), Err: err})
		}

		if r.IsDir() && w.descend(depth) {
			if err := w.reverse(ctx, work, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
