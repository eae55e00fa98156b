package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rangechain/converter"
)

// Default category names used when no option overrides them.
const (
	DefaultStart    = "seed"
	DefaultTerminal = "location"
)

// Sentinel errors for chain construction.
var (
	// ErrNoMapping is returned when a category has no outgoing stage before the terminal.
	ErrNoMapping = errors.New("chain: no such mapping")

	// ErrDuplicateStage is returned when two stages share a source category.
	ErrDuplicateStage = errors.New("chain: duplicate stage for category")

	// ErrCycle is returned when the path revisits a category.
	ErrCycle = errors.New("chain: categories form a cycle")

	// ErrNilConverter is returned when a stage has no converter.
	ErrNilConverter = errors.New("chain: stage converter is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chain: invalid option supplied")
)

// Stage is one named transformation step.
type Stage struct {
	From      string
	To        string
	Converter *converter.Converter
}

// Step records one category transition of a traced value.
type Step struct {
	From string
	To   string
	In   uint64
	Out  uint64
}

// Option configures Build.
type Option func(*Options)

// Options holds the endpoints of the path Build resolves.
type Options struct {
	Start    string
	Terminal string

	err error
}

// DefaultOptions returns Options with Start "seed" and Terminal "location".
func DefaultOptions() Options {
	return Options{Start: DefaultStart, Terminal: DefaultTerminal}
}

// WithStart sets the category traversal begins at.
func WithStart(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: start category is empty", ErrOptionViolation)
			return
		}
		o.Start = name
	}
}

// WithTerminal sets the category traversal stops at.
func WithTerminal(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: terminal category is empty", ErrOptionViolation)
			return
		}
		o.Terminal = name
	}
}
