package almanac_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangechain/almanac"
	"github.com/katalvlaran/rangechain/chain"
	"github.com/katalvlaran/rangechain/converter"
	"github.com/katalvlaran/rangechain/interval"
	"github.com/katalvlaran/rangechain/pipeline"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// TestParse_Sample decodes seeds and every map block.
func TestParse_Sample(t *testing.T) {
	a, err := almanac.ParseString(sample)
	require.NoError(t, err)
	assert.Equal(t, []uint64{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Maps, 7)
	assert.Equal(t, "seed", a.Maps[0].From)
	assert.Equal(t, "soil", a.Maps[0].To)
	assert.Equal(t, converter.RuleSet{
		{SourceStart: 98, DestStart: 50, Length: 2},
		{SourceStart: 50, DestStart: 52, Length: 48},
	}, a.Maps[0].Rules)
	assert.Equal(t, "humidity", a.Maps[6].From)
	assert.Equal(t, "location", a.Maps[6].To)
	assert.Len(t, a.Maps[2].Rules, 4)
}

// TestParse_EndToEnd runs both modes on the parsed sample.
func TestParse_EndToEnd(t *testing.T) {
	a, err := almanac.ParseString(sample)
	require.NoError(t, err)
	c, err := a.Chain()
	require.NoError(t, err)
	r, err := pipeline.New(c)
	require.NoError(t, err)

	points, err := r.MinValue(context.Background(), a.Seeds)
	require.NoError(t, err)
	assert.Equal(t, uint64(35), points)

	set, err := a.SeedRanges()
	require.NoError(t, err)
	ranges, err := r.MinRange(context.Background(), set)
	require.NoError(t, err)
	assert.Equal(t, uint64(46), ranges)
}

// TestParse_WrappedSeeds accepts seed values continued on following lines.
func TestParse_WrappedSeeds(t *testing.T) {
	a, err := almanac.ParseString("  seeds: 1 2\n3 4\n\nseed-to-location map:\n0 100 5\n")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3, 4}, a.Seeds)
	require.Len(t, a.Maps, 1)
	assert.Len(t, a.Maps[0].Rules, 1)

	c, err := a.Chain()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), c.ConvertValue(3), "values outside the rule pass through")
}

// TestParse_Errors covers malformed inputs and their line numbers.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"map before seeds", "seed-to-soil map:\n1 2 3\n", 1},
		{"junk before seeds", "hello\n", 1},
		{"duplicate seeds", "seeds: 1\nseeds: 2\n", 2},
		{"bad seed", "seeds: 1 x\n", 1},
		{"negative", "seeds: 1\nseed-to-soil map:\n1 -2 3\n", 3},
		{"short rule", "seeds: 1\nseed-to-soil map:\n1 2\n", 3},
		{"long rule", "seeds: 1\nseed-to-soil map:\n1 2 3 4\n", 3},
		{"bad header", "seeds: 1\n\nseed soil map:\n", 3},
		{"empty side", "seeds: 1\n-to-soil map:\n", 2},
		{"empty map at end", "seeds: 1\nseed-to-soil map:\n1 2 3\n\nsoil-to-location map:\n", 5},
		{"empty map before next", "seeds: 1\nseed-to-soil map:\nsoil-to-location map:\n1 2 3\n", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := almanac.ParseString(c.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, almanac.ErrSyntax)
			var pe *almanac.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, c.line, pe.Line)
		})
	}
}

// TestParse_NoSeeds rejects inputs without seed values.
func TestParse_NoSeeds(t *testing.T) {
	_, err := almanac.ParseString("")
	assert.ErrorIs(t, err, almanac.ErrNoSeeds)
	_, err = almanac.ParseString("seeds:\nseed-to-location map:\n0 0 1\n")
	assert.ErrorIs(t, err, almanac.ErrNoSeeds)
}

// TestSeedRanges pairs seeds and rejects odd counts.
func TestSeedRanges(t *testing.T) {
	a := &almanac.Almanac{Seeds: []uint64{79, 14, 55, 13}}
	set, err := a.SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, interval.Set{{Start: 79, Length: 14}, {Start: 55, Length: 13}}, set)

	a.Seeds = []uint64{1, 2, 3}
	_, err = a.SeedRanges()
	assert.ErrorIs(t, err, almanac.ErrOddSeeds)
	assert.ErrorIs(t, err, interval.ErrOddPairs)
}

// TestChain_Options forwards endpoints and surfaces missing stages.
func TestChain_Options(t *testing.T) {
	a, err := almanac.ParseString(sample)
	require.NoError(t, err)

	c, err := a.Chain(chain.WithTerminal("water"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = a.Chain(chain.WithTerminal("moon"))
	assert.ErrorIs(t, err, chain.ErrNoMapping)
}
