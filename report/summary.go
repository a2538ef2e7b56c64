package report

import (
	"io"
	"strconv"

	"github.com/jxsl13/attr-diff/model"
	"github.com/olekukonko/tablewriter"
)

// Summary counts findings by kind.
type Summary struct {
	Paths       int
	Differences map[model.Attribute]int
	Outcomes    map[model.OutcomeKind]int
	Orphans     map[model.OrphanReason]int
	Warnings    int
	Errors      int
}

func NewSummary() *Summary {
	return &Summary{
		Differences: make(map[model.Attribute]int, 4),
		Outcomes:    make(map[model.OutcomeKind]int, 4),
		Orphans:     make(map[model.OrphanReason]int, 3),
	}
}

func (s *Summary) Result(r model.Result) {
	if r.Empty() {
		return
	}
	s.Paths++
	if r.Outcome != nil {
		s.Outcomes[r.Outcome.Kind]++
	}
	for _, d := range r.Differences {
		s.Differences[d.Attribute]++
	}
	s.Warnings += len(r.Warnings)
}

func (s *Summary) Orphan(o model.Orphan) {
	s.Orphans[o.Reason]++
}

func (s *Summary) Error(model.TraversalError) {
	s.Errors++
}

// Render writes the non-zero counters as a table.
func (s *Summary) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Kind", "Count"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	add := func(category, kind string, n int) {
		if n > 0 {
			table.Append([]string{category, kind, strconv.Itoa(n)})
		}
	}

	add("paths", "reported", s.Paths)
	for _, a := range []model.Attribute{model.AttrType, model.AttrOwner, model.AttrGroup, model.AttrPermissions} {
		add("difference", string(a), s.Differences[a])
	}
	for _, k := range []model.OutcomeKind{model.OutcomeMissing, model.OutcomeAccessDenied, model.OutcomeWrongParentType, model.OutcomeOtherError} {
		add("outcome", string(k), s.Outcomes[k])
	}
	for _, r := range []model.OrphanReason{model.ReasonMissing, model.ReasonAccessDenied, model.ReasonUnknownError} {
		add("orphan", string(r), s.Orphans[r])
	}
	add("warning", "unknown type", s.Warnings)
	add("error", "traversal", s.Errors)

	table.Render()
}
