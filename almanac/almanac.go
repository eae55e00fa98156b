package almanac

import (
	"fmt"

	"github.com/katalvlaran/rangechain/chain"
	"github.com/katalvlaran/rangechain/converter"
	"github.com/katalvlaran/rangechain/interval"
)

// Stages builds one Converter per map, in declaration order.
func (a *Almanac) Stages() []chain.Stage {
	stages := make([]chain.Stage, 0, len(a.Maps))
	for _, m := range a.Maps {
		stages = append(stages, chain.Stage{From: m.From, To: m.To, Converter: converter.New(m.Rules)})
	}

	return stages
}

// Chain resolves the almanac's maps into a chain.Chain.
func (a *Almanac) Chain(opts ...chain.Option) (*chain.Chain, error) {
	return chain.Build(a.Stages(), opts...)
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() (interval.Set, error) {
	set, err := interval.FromPairs(a.Seeds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOddSeeds, err)
	}

	return set, nil
}
