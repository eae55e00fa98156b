package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangechain/chain"
	"github.com/katalvlaran/rangechain/converter"
)

// sampleSeeds are the starting values of the reference almanac.
var sampleSeeds = []uint64{79, 14, 55, 13}

// sampleChain builds the seven-stage reference almanac chain.
func sampleChain(t testing.TB) *chain.Chain {
	t.Helper()
	stage := func(from, to string, triples ...[3]uint64) chain.Stage {
		return chain.Stage{From: from, To: to, Converter: converter.New(converter.RuleSetFromTriples(triples))}
	}
	c, err := chain.Build([]chain.Stage{
		stage("seed", "soil", [3]uint64{50, 98, 2}, [3]uint64{52, 50, 48}),
		stage("soil", "fertilizer", [3]uint64{0, 15, 37}, [3]uint64{37, 52, 2}, [3]uint64{39, 0, 15}),
		stage("fertilizer", "water", [3]uint64{49, 53, 8}, [3]uint64{0, 11, 42}, [3]uint64{42, 0, 7}, [3]uint64{57, 7, 4}),
		stage("water", "light", [3]uint64{88, 18, 7}, [3]uint64{18, 25, 70}),
		stage("light", "temperature", [3]uint64{45, 77, 23}, [3]uint64{81, 45, 19}, [3]uint64{68, 64, 13}),
		stage("temperature", "humidity", [3]uint64{0, 69, 1}, [3]uint64{1, 0, 69}),
		stage("humidity", "location", [3]uint64{60, 56, 37}, [3]uint64{56, 93, 4}),
	})
	require.NoError(t, err)

	return c
}
