// Package interval provides half-open integer intervals and the ordered
// interval sets that flow through a rangechain pipeline.
//
// What
//
//   - Interval{Start, Length} denotes [Start, Start+Length).
//   - Set is an ordered batch of intervals. Sets are never merged or
//     coalesced: duplicates and adjacent pieces are tolerated.
//   - FromPairs turns a flat (start, length, start, length, ...) list into a Set.
//
// Why
//
//	Range-mode queries relocate whole spans of integers at once. Carrying
//	them as (start, length) pairs keeps the cost proportional to the number
//	of pieces instead of the number of covered points.
//
// Complexity
//
//   - TotalLength, MinStart: O(n) over the set.
//   - FromPairs: O(n).
//
// Errors
//
//   - ErrEmptySet  if MinStart is asked of a set with no non-empty interval.
//   - ErrOddPairs  if FromPairs receives an odd number of values.
package interval
