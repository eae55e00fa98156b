package almanac

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rangechain/converter"
)

// Sentinel errors for almanac parsing.
var (
	// ErrSyntax is wrapped by every *ParseError.
	ErrSyntax = errors.New("almanac: syntax error")

	// ErrNoSeeds indicates the input declares no seed values.
	ErrNoSeeds = errors.New("almanac: no seeds")

	// ErrOddSeeds indicates seeds cannot be read as (start, length) pairs.
	ErrOddSeeds = errors.New("almanac: seed ranges need an even number of values")
)

// ParseError reports a malformed input line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("almanac: line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Map is one "<from>-to-<to> map:" block.
type Map struct {
	From  string
	To    string
	Rules converter.RuleSet
}

// Almanac is the parsed input: starting values plus stage rule sets in
// declaration order.
type Almanac struct {
	Seeds []uint64
	Maps  []Map
}
