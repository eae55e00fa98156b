package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for pipeline runs.
var (
	// ErrNilChain is returned when a Runner is built without a chain.
	ErrNilChain = errors.New("pipeline: chain is nil")

	// ErrEmptyResult is returned when a minimum is requested over no values.
	ErrEmptyResult = errors.New("pipeline: empty result")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pipeline: invalid option supplied")
)

// Option configures a Runner.
type Option func(*Options)

// Options holds Runner parameters and callbacks.
type Options struct {
	// Logger receives stage and run events. Never nil after DefaultOptions.
	Logger *zap.Logger

	// Workers is the number of goroutines used by MinValue.
	Workers int

	// OnStage is called after each range-mode stage.
	OnStage func(from, to string, pieces int)

	err error
}

// DefaultOptions returns a no-op logger, a single worker and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: 1,
		OnStage: func(string, string, int) {},
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets point-mode parallelism.
//
//	n ≥ 1: use n goroutines
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnStage registers a hook run after every range-mode stage.
func WithOnStage(fn func(from, to string, pieces int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}
