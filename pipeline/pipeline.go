package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rangechain/chain"
	"github.com/katalvlaran/rangechain/interval"
)

// Runner evaluates point and range queries against one chain.
type Runner struct {
	chain *chain.Chain
	opts  Options
}

// New returns a Runner for c.
// Returns ErrNilChain or ErrOptionViolation for invalid input.
func New(c *chain.Chain, opts ...Option) (*Runner, error) {
	if c == nil {
		return nil, ErrNilChain
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Runner{chain: c, opts: o}, nil
}

// Chain returns the chain the Runner evaluates.
func (r *Runner) Chain() *chain.Chain {
	return r.chain
}

// MinValue converts every value independently and returns the smallest
// terminal value. Returns ErrEmptyResult if values is empty.
func (r *Runner) MinValue(ctx context.Context, values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no starting values", ErrEmptyResult)
	}

	workers := min(r.opts.Workers, len(values))
	var (
		best uint64
		err  error
	)
	if workers == 1 {
		best, err = r.minValues(ctx, values)
	} else {
		best, err = r.minValuesParallel(ctx, values, workers)
	}
	if err != nil {
		return 0, err
	}

	r.opts.Logger.Info("point run complete",
		zap.String("start", r.chain.Start()),
		zap.String("terminal", r.chain.Terminal()),
		zap.Int("inputs", len(values)),
		zap.Int("workers", workers),
		zap.Uint64("min", best))

	return best, nil
}

// minValues is the sequential point-mode loop; values must be non-empty.
func (r *Runner) minValues(ctx context.Context, values []uint64) (uint64, error) {
	var best uint64
	for i, v := range values {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		out := r.chain.ConvertValue(v)
		if i == 0 || out < best {
			best = out
		}
	}

	return best, nil
}

// minValuesParallel splits values into contiguous chunks, one per worker,
// and reduces the per-chunk minima.
func (r *Runner) minValuesParallel(ctx context.Context, values []uint64, workers int) (uint64, error) {
	size := (len(values) + workers - 1) / workers
	chunks := (len(values) + size - 1) / size
	mins := make([]uint64, chunks)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < chunks; w++ {
		w := w
		lo := w * size
		hi := min(lo+size, len(values))
		g.Go(func() error {
			m, err := r.minValues(gctx, values[lo:hi])
			if err != nil {
				return err
			}
			mins[w] = m

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	best := mins[0]
	for _, m := range mins[1:] {
		best = min(best, m)
	}

	return best, nil
}

// MinRange converts the whole set through the chain as one batch and
// returns the smallest Start among the final pieces.
// Returns ErrEmptyResult if the set covers no values.
func (r *Runner) MinRange(ctx context.Context, set interval.Set) (uint64, error) {
	if set.Empty() {
		return 0, fmt.Errorf("%w: no starting intervals", ErrEmptyResult)
	}
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	cur, err := r.chain.ConvertSetFunc(set, func(st chain.Stage, out interval.Set) error {
		r.opts.OnStage(st.From, st.To, len(out))
		r.opts.Logger.Debug("stage converted",
			zap.String("from", st.From),
			zap.String("to", st.To),
			zap.Int("pieces", len(out)))

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	})
	if err != nil {
		return 0, err
	}

	best, err := cur.MinStart()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEmptyResult, err)
	}

	r.opts.Logger.Info("range run complete",
		zap.String("start", r.chain.Start()),
		zap.String("terminal", r.chain.Terminal()),
		zap.Int("inputs", len(set)),
		zap.Int("pieces", len(cur)),
		zap.Uint64("min", best))

	return best, nil
}
