package chain

import (
	"fmt"

	"github.com/katalvlaran/rangechain/interval"
)

// Chain is a resolved, ordered path of stages from Start to Terminal.
type Chain struct {
	start    string
	terminal string
	stages   []Stage
}

// Build resolves stages into the linear path from the start category to
// the terminal category.
//
// Steps:
//  1. Index stages by From, rejecting duplicates and nil converters.
//  2. From Start, follow From → To until Terminal is reached, failing with
//     ErrNoMapping on a dead end and ErrCycle on a revisit.
//
// Complexity: O(S) time and memory for S stages.
func Build(stages []Stage, opts ...Option) (*Chain, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	byFrom := make(map[string]int, len(stages))
	for i, st := range stages {
		if st.Converter == nil {
			return nil, fmt.Errorf("%w: %s-to-%s", ErrNilConverter, st.From, st.To)
		}
		if _, dup := byFrom[st.From]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStage, st.From)
		}
		byFrom[st.From] = i
	}

	path := make([]Stage, 0, len(stages))
	visited := make(map[string]bool, len(stages))
	for cat := o.Start; cat != o.Terminal; {
		if visited[cat] {
			return nil, fmt.Errorf("%w: revisited %q", ErrCycle, cat)
		}
		visited[cat] = true
		i, ok := byFrom[cat]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no outgoing stage", ErrNoMapping, cat)
		}
		path = append(path, stages[i])
		cat = stages[i].To
	}

	return &Chain{start: o.Start, terminal: o.Terminal, stages: path}, nil
}

// Start returns the first category.
func (c *Chain) Start() string { return c.start }

// Terminal returns the category traversal stops at.
func (c *Chain) Terminal() string { return c.terminal }

// Len returns the number of stages on the path.
func (c *Chain) Len() int { return len(c.stages) }

// Stages returns the resolved stages in traversal order.
func (c *Chain) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)

	return out
}

// Categories returns every category on the path, start and terminal included.
func (c *Chain) Categories() []string {
	cats := make([]string, 0, len(c.stages)+1)
	cats = append(cats, c.start)
	for _, st := range c.stages {
		cats = append(cats, st.To)
	}

	return cats
}

// ConvertValue maps v from the start category to the terminal category.
func (c *Chain) ConvertValue(v uint64) uint64 {
	for _, st := range c.stages {
		v = st.Converter.ConvertValue(v)
	}

	return v
}

// Trace maps v like ConvertValue and records every transition.
func (c *Chain) Trace(v uint64) []Step {
	steps := make([]Step, 0, len(c.stages))
	for _, st := range c.stages {
		out := st.Converter.ConvertValue(v)
		steps = append(steps, Step{From: st.From, To: st.To, In: v, Out: out})
		v = out
	}

	return steps
}

// ConvertSet maps every interval of s through all stages as one batch.
// Empty intervals are discarded at the first stage; after that the piece
// count never decreases from one stage to the next.
func (c *Chain) ConvertSet(s interval.Set) interval.Set {
	out, _ := c.ConvertSetFunc(s, nil)

	return out
}

// ConvertSetFunc is ConvertSet with fn called after each stage on the
// set that stage produced. A non-nil error from fn stops the traversal
// and is returned as is. fn may be nil. s is not modified.
func (c *Chain) ConvertSetFunc(s interval.Set, fn func(st Stage, out interval.Set) error) (interval.Set, error) {
	cur := s.Clone()
	for _, st := range c.stages {
		cur = st.Converter.ConvertSet(cur)
		if fn == nil {
			continue
		}
		if err := fn(st, cur); err != nil {
			return nil, err
		}
	}

	return cur, nil
}
