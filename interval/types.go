package interval

import (
	"errors"
	"fmt"
)

// Sentinel errors for interval operations.
var (
	// ErrEmptySet indicates a minimum was requested over no covered values.
	ErrEmptySet = errors.New("interval: set covers no values")

	// ErrOddPairs indicates a flat pair list has a dangling start.
	ErrOddPairs = errors.New("interval: pair list must have an even number of values")
)

// Interval is the half-open span [Start, Start+Length).
type Interval struct {
	Start  uint64
	Length uint64
}

// Set is an ordered collection of intervals processed as one batch.
type Set []Interval

// New returns the interval [start, start+length).
func New(start, length uint64) Interval {
	return Interval{Start: start, Length: length}
}

// End returns the first value past the interval.
func (iv Interval) End() uint64 {
	return iv.Start + iv.Length
}

// Empty reports whether the interval covers no values.
func (iv Interval) Empty() bool {
	return iv.Length == 0
}

// Contains reports whether v lies inside the interval.
func (iv Interval) Contains(v uint64) bool {
	return v >= iv.Start && v-iv.Start < iv.Length
}

// String renders the interval as [start,end).
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End())
}
