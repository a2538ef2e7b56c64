package report

import (
	"io"

	"github.com/jxsl13/attr-diff/model"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

type event struct {
	Event  string                `yaml:"event"`
	Result *model.Result         `yaml:"result,omitempty"`
	Orphan *model.Orphan         `yaml:"orphan,omitempty"`
	Error  *model.TraversalError `yaml:"error,omitempty"`
	Cause  string                `yaml:"cause,omitempty"`
}

// YAML writes one YAML document per event. A sink never fails the walk, so
// the first write error is kept and returned by Close.
type YAML struct {
	enc *yaml.Encoder
	err error
}

func NewYAML(w io.Writer) *YAML {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAML{enc: enc}
}

func (y *YAML) Result(r model.Result) {
	if r.Empty() {
		return
	}
	ev := event{Event: "result", Result: &r}
	if r.Outcome != nil && r.Outcome.Err != nil {
		ev.Cause = r.Outcome.Err.Error()
	}
	y.encode(ev)
}

func (y *YAML) Orphan(o model.Orphan) {
	ev := event{Event: "orphan", Orphan: &o}
	if o.Err != nil {
		ev.Cause = o.Err.Error()
	}
	y.encode(ev)
}

func (y *YAML) Error(e model.TraversalError) {
	ev := event{Event: "error", Error: &e}
	if e.Err != nil {
		ev.Cause = e.Err.Error()
	}
	y.encode(ev)
}

func (y *YAML) encode(ev event) {
	if y.err != nil {
		return
	}
	if err := y.enc.Encode(ev); err != nil {
		y.err = errors.Errorf("failed to write yaml report: %w", err)
	}
}

// Close flushes the encoder and returns the first write error.
func (y *YAML) Close() error {
	err := y.enc.Close()
	if y.err != nil {
		return y.err
	}
	return err
}
