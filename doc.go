// Package rangechain remaps integers, and whole sets of integer intervals,
// through a linear chain of named stages.
//
// What is rangechain?
//
//	Each stage is a sparse list of (source, destination, length) rules.
//	Anything the rules do not cover maps to itself. Stages are linked by
//	category name (seed → soil → … → location) and a value, or a batch of
//	intervals, is pushed through them in order.
//
// Under the hood the module is organized into small packages:
//
//	interval/  — half-open Interval and the ordered Set batches
//	converter/ — RuleSet normalization into a total partition; point and interval lookup
//	chain/     — resolves named stages into one ordered path
//	pipeline/  — point-mode and range-mode minimum queries, optional parallelism
//	almanac/   — parser for the "seeds: / a-to-b map:" text format
//
// Quick example:
//
//	a, _ := almanac.ParseString(input)
//	c, _ := a.Chain()
//	r, _ := pipeline.New(c)
//	lowest, _ := r.MinValue(ctx, a.Seeds)
//
// The rangechain command (cmd/rangechain) wraps the same flow for files.
package rangechain
