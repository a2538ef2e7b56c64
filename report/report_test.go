package report

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/jxsl13/attr-diff/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testNames() *Names {
	return &Names{
		lookupUser: func(id string) (string, error) {
			if id == "500" {
				return "alice", nil
			}
			return "", errors.New("unknown user")
		},
		lookupGroup: func(id string) (string, error) {
			return "", errors.New("unknown group")
		},
	}
}

func TestTextResult(t *testing.T) {
	var out, errOut bytes.Buffer
	text := NewText(&out, &errOut, true).WithNames(testNames())

	text.Result(model.Result{Path: "same"})
	text.Result(model.Result{
		Path: "a/file1",
		Differences: []model.Difference{
			model.IDDifference("a/file1", model.AttrOwner, 500, 501),
			model.IDDifference("a/file1", model.AttrGroup, 100, 101),
			model.PermDifference("a/file1", 755, 44),
		},
	})
	text.Result(model.Result{
		Path:    "gone",
		Outcome: &model.Outcome{Side: model.Right, Kind: model.OutcomeMissing, Err: fs.ErrNotExist},
	})
	text.Result(model.Result{
		Path:     "fifo",
		Warnings: []model.Warning{{Side: model.Left, Type: model.TypeUnknown}},
	})

	want := strings.Join([]string{
		"a/file1",
		"    owner: 500 (alice) -> 501",
		"    group: 100 -> 101",
		"    permissions: 755 -> 044",
		"gone",
		"    missing on right",
		"fifo",
		"    warning: left entry has an unsupported file type",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
	assert.Empty(t, errOut.String())
}

func TestTextOrphanAndError(t *testing.T) {
	var out, errOut bytes.Buffer
	text := NewText(&out, &errOut, true)

	text.Orphan(model.Orphan{Path: "a/extra", Side: model.Left, Reason: model.ReasonMissing})
	text.Orphan(model.Orphan{Path: "secret", Side: model.Left, Reason: model.ReasonAccessDenied})
	text.Orphan(model.Orphan{Path: "vanished", Side: model.Right, Reason: model.ReasonMissing})
	text.Error(model.TraversalError{Path: "/l/locked", Rel: "locked", Op: "open", Err: fs.ErrPermission})

	assert.Equal(t, strings.Join([]string{
		"a/extra",
		"    orphan: missing on left",
		"secret",
		"    orphan: left counterpart unreachable (access-denied)",
		"vanished",
		"    orphan: cannot examine right entry (missing)",
		"",
	}, "\n"), out.String())
	assert.Equal(t, "error: failed to open \"/l/locked\": permission denied\n", errOut.String())
}

func TestYAML(t *testing.T) {
	var out bytes.Buffer
	y := NewYAML(&out)
	y.Result(model.Result{Path: "empty"})
	y.Result(model.Result{
		Path:        "a",
		Differences: []model.Difference{model.PermDifference("a", 755, 700)},
	})
	y.Orphan(model.Orphan{Path: "b", Side: model.Left, Reason: model.ReasonMissing, Err: fs.ErrNotExist})
	require.NoError(t, y.Close())

	dec := yaml.NewDecoder(&out)
	var docs []map[string]any
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			break
		}
		docs = append(docs, doc)
	}
	require.Len(t, docs, 2)

	assert.Equal(t, "result", docs[0]["event"])
	result := docs[0]["result"].(map[string]any)
	assert.Equal(t, "a", result["path"])
	diff := result["differences"].([]any)[0].(map[string]any)
	assert.Equal(t, "permissions", diff["attribute"])
	assert.Equal(t, "755", diff["left"])
	assert.Equal(t, 700, diff["right_id"])

	assert.Equal(t, "orphan", docs[1]["event"])
	orphan := docs[1]["orphan"].(map[string]any)
	assert.Equal(t, "left", orphan["side"])
	assert.Equal(t, "missing", orphan["reason"])
	assert.Equal(t, "file does not exist", docs[1]["cause"])
}

func TestYAMLKeepsZeroIDs(t *testing.T) {
	var out bytes.Buffer
	y := NewYAML(&out)
	y.Result(model.Result{
		Path: "a",
		Differences: []model.Difference{
			model.IDDifference("a", model.AttrOwner, 0, 501),
			model.PermDifference("a", 0, 755),
		},
	})
	require.NoError(t, y.Close())

	var doc struct {
		Result struct {
			Differences []map[string]any `yaml:"differences"`
		} `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Result.Differences, 2)
	for _, diff := range doc.Result.Differences {
		assert.Contains(t, diff, "left_id")
		assert.Equal(t, 0, diff["left_id"])
	}
	assert.Equal(t, "000", doc.Result.Differences[1]["left"])
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestYAMLWriteError(t *testing.T) {
	w := &failingWriter{}
	y := NewYAML(w)
	y.Orphan(model.Orphan{Path: "b", Side: model.Left, Reason: model.ReasonMissing})
	require.Positive(t, w.writes)
	y.Error(model.TraversalError{Path: "/x", Rel: "x", Op: "open", Err: fs.ErrPermission})

	err := y.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write yaml report")
	assert.Contains(t, err.Error(), "disk full")
}

func TestSummary(t *testing.T) {
	s := NewSummary()
	sink := Multi(s, &Collector{})

	sink.Result(model.Result{Path: "quiet"})
	sink.Result(model.Result{Path: "a", Differences: []model.Difference{
		model.IDDifference("a", model.AttrOwner, 1, 2),
		model.PermDifference("a", 755, 700),
	}})
	sink.Result(model.Result{Path: "b", Outcome: &model.Outcome{Kind: model.OutcomeMissing}})
	sink.Orphan(model.Orphan{Path: "c", Reason: model.ReasonMissing})
	sink.Error(model.TraversalError{Path: "/x"})

	assert.Equal(t, 2, s.Paths)
	assert.Equal(t, 1, s.Differences[model.AttrOwner])
	assert.Equal(t, 1, s.Differences[model.AttrPermissions])
	assert.Equal(t, 1, s.Outcomes[model.OutcomeMissing])
	assert.Equal(t, 1, s.Orphans[model.ReasonMissing])
	assert.Equal(t, 1, s.Errors)

	var out bytes.Buffer
	s.Render(&out)
	table := out.String()
	assert.Contains(t, table, "CATEGORY")
	assert.Contains(t, table, "permissions")
	assert.Contains(t, table, "traversal")
	assert.NotContains(t, table, "group")
}

func TestCollectorSortedAndReplay(t *testing.T) {
	c := &Collector{}
	c.Result(model.Result{Path: "b"})
	c.Result(model.Result{Path: "a"})
	c.Orphan(model.Orphan{Path: "z"})
	c.Orphan(model.Orphan{Path: "y"})

	sorted := c.Sorted()
	assert.Equal(t, "a", sorted.Results[0].Path)
	assert.Equal(t, "y", sorted.Orphans[0].Path)
	// the original keeps its order
	assert.Equal(t, "b", c.Results[0].Path)

	replayed := &Collector{}
	sorted.Replay(replayed)
	assert.Equal(t, sorted, replayed)
}

func TestNamesMemoized(t *testing.T) {
	calls := 0
	n := &Names{lookupUser: func(id string) (string, error) {
		calls++
		return "u" + id, nil
	}}
	assert.Equal(t, "u7", n.User(7))
	assert.Equal(t, "u7", n.User(7))
	assert.Equal(t, "", n.User(-1))
	assert.Equal(t, 1, calls)
}
