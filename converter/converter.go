package converter

import (
	"sort"

	"github.com/katalvlaran/rangechain/interval"
)

// Converter is the total, gap-filled partition built from a RuleSet.
// parts is sorted by SourceStart ascending, starts at 0 and ends with an
// unbounded segment.
type Converter struct {
	parts []Range
}

// New normalizes rules into a total partition of [0, ∞).
//
// Algorithm:
//  1. Copy and sort rules by SourceStart (stable, so equal keys keep input order).
//  2. Walk them with next = 0. Before each rule whose SourceStart > next,
//     emit the identity gap [next, SourceStart).
//  3. Emit the rule and set next = SourceStart + Length.
//  4. Close with the unbounded identity [next, ∞), unless a rule already
//     reaches the top of the uint64 domain.
//
// The input is not modified. New(nil) is the identity converter.
func New(rules RuleSet) *Converter {
	sorted := make([]Range, 0, len(rules))
	for _, r := range rules {
		if r.Length == 0 {
			continue
		}
		sorted = append(sorted, r)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SourceStart < sorted[j].SourceStart
	})

	parts := make([]Range, 0, 2*len(sorted)+1)
	var next uint64
	saturated := false
	for _, r := range sorted {
		if r.SourceStart > next {
			parts = append(parts, Range{SourceStart: next, DestStart: next, Length: r.SourceStart - next})
		}
		parts = append(parts, r)
		if r.Length > Unbounded-r.SourceStart {
			saturated = true
			break
		}
		next = r.SourceStart + r.Length
	}
	if !saturated {
		parts = append(parts, Range{SourceStart: next, DestStart: next, Length: Unbounded})
	}

	return &Converter{parts: parts}
}

// Identity returns a converter that maps every value to itself.
func Identity() *Converter {
	return New(nil)
}

// Lookup returns the partition segment covering v: the one with the
// largest SourceStart not exceeding v. It always exists.
func (c *Converter) Lookup(v uint64) Range {
	i := sort.Search(len(c.parts), func(i int) bool {
		return c.parts[i].SourceStart > v
	})

	return c.parts[i-1]
}

// ConvertValue maps v through the partition. Defined for every v.
func (c *Converter) ConvertValue(v uint64) uint64 {
	return c.Lookup(v).Map(v)
}

// ConvertRange maps iv, splitting it wherever it crosses a segment
// boundary. Pieces are emitted in source order; their destinations are
// not sorted. An empty iv yields no pieces.
func (c *Converter) ConvertRange(iv interval.Interval) interval.Set {
	var out interval.Set
	cur, left := iv.Start, iv.Length
	for left > 0 {
		seg := c.Lookup(cur)
		l := min(seg.remaining(cur), left)
		out = append(out, interval.Interval{Start: seg.Map(cur), Length: l})
		cur += l
		left -= l
	}

	return out
}

// ConvertSet applies ConvertRange to every interval of s independently
// and flattens the results in order. Empty intervals contribute nothing.
func (c *Converter) ConvertSet(s interval.Set) interval.Set {
	out := make(interval.Set, 0, len(s))
	for _, iv := range s {
		out = append(out, c.ConvertRange(iv)...)
	}

	return out
}

// Partition returns a copy of the normalized segments in ascending order.
func (c *Converter) Partition() []Range {
	out := make([]Range, len(c.parts))
	copy(out, c.parts)

	return out
}

// Len returns the number of partition segments, gaps included.
func (c *Converter) Len() int {
	return len(c.parts)
}
