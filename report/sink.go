// Package report contains the consumers of walker findings.
package report

import (
	"sort"

	"github.com/jxsl13/attr-diff/model"
)

// Sink receives findings as the walk goes. It never fails and never asks the
// walk to stop.
type Sink interface {
	Result(model.Result)
	Orphan(model.Orphan)
	Error(model.TraversalError)
}

type multi []Sink

// Multi forwards every event to all sinks in order.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Result(r model.Result) {
	for _, s := range m {
		s.Result(r)
	}
}

func (m multi) Orphan(o model.Orphan) {
	for _, s := range m {
		s.Orphan(o)
	}
}

func (m multi) Error(e model.TraversalError) {
	for _, s := range m {
		s.Error(e)
	}
}

// Collector keeps every event in memory.
type Collector struct {
	Results []model.Result
	Orphans []model.Orphan
	Errors  []model.TraversalError
}

func (c *Collector) Result(r model.Result) {
	c.Results = append(c.Results, r)
}

func (c *Collector) Orphan(o model.Orphan) {
	c.Orphans = append(c.Orphans, o)
}

func (c *Collector) Error(e model.TraversalError) {
	c.Errors = append(c.Errors, e)
}

// Differences flattens the differences of all results.
func (c *Collector) Differences() []model.Difference {
	var out []model.Difference
	for _, r := range c.Results {
		out = append(out, r.Differences...)
	}
	return out
}

// Sorted returns a copy ordered by relative path, since directory
// enumeration order is not stable.
func (c *Collector) Sorted() *Collector {
	out := &Collector{
		Results: append([]model.Result(nil), c.Results...),
		Orphans: append([]model.Orphan(nil), c.Orphans...),
		Errors:  append([]model.TraversalError(nil), c.Errors...),
	}
	sort.SliceStable(out.Results, func(i, j int) bool {
		return out.Results[i].Path < out.Results[j].Path
	})
	sort.SliceStable(out.Orphans, func(i, j int) bool {
		return out.Orphans[i].Path < out.Orphans[j].Path
	})
	sort.SliceStable(out.Errors, func(i, j int) bool {
		return out.Errors[i].Path < out.Errors[j].Path
	})
	return out
}

// Replay sends the collected events to another sink.
func (c *Collector) Replay(s Sink) {
	for _, r := range c.Results {
		s.Result(r)
	}
	for _, o := range c.Orphans {
		s.Orphan(o)
	}
	for _, e := range c.Errors {
		s.Error(e)
	}
}
