package converter

import (
	"fmt"
	"math"
)

// Unbounded is the Length sentinel of the trailing identity segment that
// extends a partition to infinity.
const Unbounded uint64 = math.MaxUint64

// Range maps [SourceStart, SourceStart+Length) onto
// [DestStart, DestStart+Length). Length == Unbounded marks a segment
// with no upper bound; such segments are only synthesized by New.
type Range struct {
	SourceStart uint64
	DestStart   uint64
	Length      uint64
}

// IsUnbounded reports whether r extends to infinity.
func (r Range) IsUnbounded() bool {
	return r.Length == Unbounded
}

// IsIdentity reports whether r maps every covered value to itself.
func (r Range) IsIdentity() bool {
	return r.SourceStart == r.DestStart
}

// Covers reports whether v lies in r's source span.
func (r Range) Covers(v uint64) bool {
	return v >= r.SourceStart && (r.IsUnbounded() || v-r.SourceStart < r.Length)
}

// Map relocates v, which must be covered by r.
func (r Range) Map(v uint64) uint64 {
	return r.DestStart + (v - r.SourceStart)
}

// remaining returns how many values of r's source span lie at or after v.
func (r Range) remaining(v uint64) uint64 {
	if r.IsUnbounded() {
		return Unbounded
	}

	return r.Length - (v - r.SourceStart)
}

// String renders r as "[src,end) -> dst".
func (r Range) String() string {
	if r.IsUnbounded() {
		return fmt.Sprintf("[%d,∞) -> %d", r.SourceStart, r.DestStart)
	}

	return fmt.Sprintf("[%d,%d) -> %d", r.SourceStart, r.SourceStart+r.Length, r.DestStart)
}

// RuleSet is the sparse, externally supplied rule list of one stage.
type RuleSet []Range

// Add appends a rule given in the textual destination-first order.
func (rs *RuleSet) Add(dest, source, length uint64) {
	*rs = append(*rs, Range{SourceStart: source, DestStart: dest, Length: length})
}

// RuleSetFromTriples builds a RuleSet from (dest, source, length) triples.
func RuleSetFromTriples(triples [][3]uint64) RuleSet {
	rs := make(RuleSet, 0, len(triples))
	for _, tr := range triples {
		rs.Add(tr[0], tr[1], tr[2])
	}

	return rs
}
