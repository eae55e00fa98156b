package pipeline_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rangechain/chain"
	"github.com/katalvlaran/rangechain/converter"
	"github.com/katalvlaran/rangechain/interval"
	"github.com/katalvlaran/rangechain/pipeline"
)

// ExampleRunner shows both query modes over a one-stage chain.
//
//	point mode: seeds 79, 14, 55, 13 map to 81, 14, 57, 13 → min 13
//	range mode: [79,93) and [55,68) map to [81,95) and [57,70) → min 57
func ExampleRunner() {
	var rs converter.RuleSet
	rs.Add(50, 98, 2)
	rs.Add(52, 50, 48)
	c, err := chain.Build([]chain.Stage{{From: "seed", To: "location", Converter: converter.New(rs)}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r, err := pipeline.New(c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ctx := context.Background()
	points, _ := r.MinValue(ctx, []uint64{79, 14, 55, 13})
	ranges, _ := r.MinRange(ctx, interval.Set{{Start: 79, Length: 14}, {Start: 55, Length: 13}})
	fmt.Println("points:", points)
	fmt.Println("ranges:", ranges)
	// Output:
	// points: 13
	// ranges: 57
}
