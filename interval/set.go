package interval

import (
	"fmt"
	"slices"
)

// FromPairs builds a Set from a flat list of (start, length) pairs.
// Returns ErrOddPairs if len(values) is odd.
func FromPairs(values []uint64) (Set, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddPairs, len(values))
	}
	s := make(Set, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		s = append(s, Interval{Start: values[i], Length: values[i+1]})
	}

	return s, nil
}

// Of returns a single-interval Set for each value, i.e. the point set {v}.
func Of(values ...uint64) Set {
	s := make(Set, 0, len(values))
	for _, v := range values {
		s = append(s, Interval{Start: v, Length: 1})
	}

	return s
}

// TotalLength sums the lengths of all intervals in s.
// Overlapping intervals are counted once per occurrence. The sum wraps
// modulo 2^64; use Empty to test whether s covers anything.
func (s Set) TotalLength() uint64 {
	var total uint64
	for _, iv := range s {
		total += iv.Length
	}

	return total
}

// Empty reports whether s has no non-empty interval.
func (s Set) Empty() bool {
	return !slices.ContainsFunc(s, func(iv Interval) bool { return !iv.Empty() })
}

// MinStart returns the smallest Start among the non-empty intervals of s.
// Returns ErrEmptySet when s has no non-empty interval.
func (s Set) MinStart() (uint64, error) {
	found := false
	var best uint64
	for _, iv := range s {
		if iv.Empty() {
			continue
		}
		if !found || iv.Start < best {
			best = iv.Start
			found = true
		}
	}
	if !found {
		return 0, ErrEmptySet
	}

	return best, nil
}

// Locate returns the index of the first interval covering offset k of the
// concatenation of s, together with k's offset inside that interval.
// The boolean is false when k is past TotalLength.
func (s Set) Locate(k uint64) (idx int, within uint64, ok bool) {
	for i, iv := range s {
		if k < iv.Length {
			return i, k, true
		}
		k -= iv.Length
	}

	return -1, 0, false
}

// Clone returns a copy of s that shares no backing storage.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)

	return out
}
