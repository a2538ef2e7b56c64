package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jxsl13/attr-diff/model"
)

const indent = "    "

// Text renders findings as line oriented text: one header line per path
// followed by indented detail lines. Traversal errors go to errOut.
type Text struct {
	out    io.Writer
	errOut io.Writer
	names  *Names

	header *color.Color
	left   *color.Color
	right  *color.Color
	warn   *color.Color
}

func NewText(out, errOut io.Writer, noColor bool) *Text {
	t := &Text{
		out:    out,
		errOut: errOut,
		names:  &Names{},
		header: color.New(color.Bold),
		left:   color.New(color.FgRed),
		right:  color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{t.header, t.left, t.right, t.warn} {
			c.DisableColor()
		}
	}
	return t
}

// WithNames replaces the owner and group name lookup.
func (t *Text) WithNames(n *Names) *Text {
	t.names = n
	return t
}

func (t *Text) Result(r model.Result) {
	if r.Empty() {
		return
	}
	var sb strings.Builder
	sb.WriteString(t.header.Sprint(r.Path))
	sb.WriteByte('\n')

	if o := r.Outcome; o != nil {
		fmt.Fprintf(&sb, "%s%s\n", indent, t.warn.Sprint(outcomeText(o)))
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&sb, "%swarning: %s\n", indent, t.warn.Sprint(w.String()))
	}
	for _, d := range r.Differences {
		fmt.Fprintf(&sb, "%s%s: %s -> %s\n",
			indent,
			d.Attribute,
			t.left.Sprint(t.value(d, d.Left, d.LeftID)),
			t.right.Sprint(t.value(d, d.Right, d.RightID)),
		)
	}
	io.WriteString(t.out, sb.String())
}

func (t *Text) Orphan(o model.Orphan) {
	var detail string
	switch {
	case o.Side == model.Right:
		detail = fmt.Sprintf("orphan: cannot examine right entry (%s)", o.Reason)
	case o.Reason == model.ReasonMissing:
		detail = "orphan: missing on left"
	default:
		detail = fmt.Sprintf("orphan: left counterpart unreachable (%s)", o.Reason)
	}
	fmt.Fprintf(t.out, "%s\n%s%s\n", t.header.Sprint(o.Path), indent, t.warn.Sprint(detail))
}

func (t *Text) Error(e model.TraversalError) {
	fmt.Fprintf(t.errOut, "%s %s\n", t.left.Sprint("error:"), e.Error())
}

func (t *Text) value(d model.Difference, v string, id int) string {
	var name string
	switch d.Attribute {
	case model.AttrOwner:
		name = t.names.User(id)
	case model.AttrGroup:
		name = t.names.Group(id)
	}
	if name == "" {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, name)
}

func outcomeText(o *model.Outcome) string {
	switch o.Kind {
	case model.OutcomeMissing:
		return fmt.Sprintf("missing on %s", o.Side)
	case model.OutcomeAccessDenied:
		return fmt.Sprintf("access denied on %s", o.Side)
	case model.OutcomeWrongParentType:
		return fmt.Sprintf("parent is not a directory on %s", o.Side)
	default:
		return fmt.Sprintf("cannot examine %s: %v", o.Side, o.Err)
	}
}
