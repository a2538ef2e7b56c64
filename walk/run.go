package walk

import (
	"context"
	"os"

	"github.com/jxsl13/attr-diff/compare"
	"github.com/jxsl13/attr-diff/config"
	"github.com/jxsl13/attr-diff/model"
	"github.com/jxsl13/attr-diff/report"
	"github.com/jxsl13/attr-diff/tree"
	"github.com/rs/zerolog"
)

// RootPath is the relative path reported when two plain files are compared.
const RootPath = "."

type root struct {
	tree    tree.Tree
	dir     bool
	archive bool
	path    string
	snap    model.Snapshot
}

func (r root) kind() string {
	switch {
	case r.archive:
		return "archive"
	case r.dir:
		return "directory"
	default:
		return "file"
	}
}

// asFile drops the archive view of a root and compares the archive file itself.
func (r root) asFile() root {
	return root{tree: tree.NewOS(r.path), path: r.path, snap: r.snap}
}

// openRoot inspects a root. A symlinked root is followed, entries below it are not.
// A file with an archive extension that cannot be read as an archive is a plain file.
func openRoot(ctx context.Context, side model.Side, path string, archives bool) (root, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return root{}, &model.RootError{Side: side, Path: path, Err: err}
	}

	plain := root{tree: tree.NewOS(path), path: path, snap: tree.SnapshotOf(fi)}

	switch {
	case fi.IsDir():
		return root{tree: tree.NewOS(path), dir: true, path: path}, nil
	case archives && fi.Mode().IsRegular() && tree.IsArchive(path):
		x, err := tree.OpenArchive(path)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("side", side.String()).Str("path", path).Err(err).Msg("not readable as archive, comparing as file")
			return plain, nil
		}
		return root{tree: x, dir: true, archive: true, path: path, snap: plain.snap}, nil
	default:
		return plain, nil
	}
}

// Run compares the two roots of cfg: the forward walk first and, in reverse
// mode, the reverse walk after it. The returned error is fatal, findings go to sink.
func Run(ctx context.Context, cfg *config.Config, sink report.Sink) error {
	log := zerolog.Ctx(ctx)

	left, err := openRoot(ctx, model.Left, cfg.Left, !cfg.NoArchives)
	if err != nil {
		return err
	}
	right, err := openRoot(ctx, model.Right, cfg.Right, !cfg.NoArchives)
	if err != nil {
		return err
	}

	// an archive next to a plain file: both roots are files
	switch {
	case left.archive && !right.dir:
		left = left.asFile()
	case right.archive && !left.dir:
		right = right.asFile()
	}

	if left.dir != right.dir {
		return model.NewConfigError("cannot compare %s %q with %s %q", left.kind(), cfg.Left, right.kind(), cfg.Right)
	}

	var compareOpts []compare.Option
	if cfg.SpecialBits {
		compareOpts = append(compareOpts, compare.WithSpecialBits())
	}

	if !left.dir {
		log.Debug().Str("left", cfg.Left).Str("right", cfg.Right).Msg("comparing files")
		if res := compare.Diff(RootPath, left.snap, right.snap, cfg.SpecialBits); !res.Empty() {
			sink.Result(res)
		}
		return nil
	}

	w := New(left.tree, right.tree, sink,
		WithFilter(cfg.Filter),
		WithMaxDepth(cfg.MaxDepth),
		WithCompareOptions(compareOpts...),
	)

	log.Debug().Str("left", cfg.Left).Str("right", cfg.Right).Msg("forward walk")
	if err := w.Forward(ctx); err != nil {
		return err
	}

	if !cfg.Reverse {
		return nil
	}

	log.Debug().Str("left", cfg.Left).Str("right", cfg.Right).Msg("reverse walk")
	return w.Reverse(ctx)
}
