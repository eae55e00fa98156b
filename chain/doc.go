// Package chain links named categories into a linear pipeline of
// converter stages, e.g. seed → soil → fertilizer → … → location.
//
// What
//
//   - A Stage maps values of category From into category To using a
//     converter.Converter.
//   - Build resolves a bag of stages into one ordered path from a start
//     category to a terminal category. Name lookups happen once, here;
//     queries walk a plain slice.
//   - ConvertValue, ConvertSet and Trace push a value or an interval set
//     through every stage in order.
//
// Options
//
//   - WithStart(name):    first category (default "seed").
//   - WithTerminal(name): category at which traversal stops (default "location").
//
// Errors
//
//   - ErrNoMapping       a category on the path has no outgoing stage.
//   - ErrDuplicateStage  two stages leave the same category (the path must be linear).
//   - ErrCycle           the path returns to a category before the terminal.
//   - ErrNilConverter    a stage carries no converter.
//   - ErrOptionViolation an empty category name was supplied.
//
// Stages that are not on the start → terminal path are accepted and ignored.
// A Chain is immutable and safe for concurrent readers.
package chain
