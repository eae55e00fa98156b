// Package almanac parses the textual almanac format into seeds and
// per-stage rule sets, and assembles them into a chain.Chain.
//
// Format
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// The seeds line comes first; its values may continue on following lines.
// Each "<from>-to-<to> map:" header opens a block of "dest source length"
// triples; a block needs at least one triple. Blank lines and surrounding
// whitespace are ignored.
//
// Errors
//
//   - *ParseError (wrapping ErrSyntax) for malformed lines, with a 1-based line number.
//   - ErrNoSeeds if the input has no seed values.
//   - ErrOddSeeds from SeedRanges when the seeds cannot be paired.
package almanac
