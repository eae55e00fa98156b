// Package converter turns a sparse list of range-remapping rules into a
// total mapping over the non-negative integers and answers point and
// interval queries against it.
//
// What
//
//   - A Range relocates [SourceStart, SourceStart+Length) onto
//     [DestStart, DestStart+Length) with slope 1.
//   - A RuleSet is the externally supplied, possibly sparse, list of Ranges
//     for one stage.
//   - A Converter normalizes a RuleSet into a sorted, gap-filled partition of
//     [0, ∞): every value not covered by a rule maps to itself, and the last
//     segment is an unbounded identity.
//
// Queries
//
//   - ConvertValue(v): map one integer.
//   - ConvertRange(iv): map a half-open interval, splitting it at every rule
//     boundary it crosses. A non-empty interval yields at least one piece,
//     and the total length always equals the input length. An empty
//     interval yields no pieces.
//   - ConvertSet(s): ConvertRange over every interval of s, flattened.
//     Empty intervals of s are discarded, so only the count of non-empty
//     intervals is guaranteed not to decrease.
//
// Contract
//
//	Supplied rules must not overlap. Overlaps are not detected; the rule
//	that sorts last among those covering a value wins, which callers must
//	treat as undefined. Zero-length rules cover nothing and are dropped.
//
// Complexity (R = number of rules, P = pieces emitted)
//
//   - New:          O(R log R)
//   - ConvertValue: O(log R)
//   - ConvertRange: O(P log R)
//
// A Converter is immutable after New and safe for concurrent readers.
package converter
