package converter_test

import (
	"fmt"

	"github.com/katalvlaran/rangechain/converter"
	"github.com/katalvlaran/rangechain/interval"
)

// ExampleConverter_ConvertValue maps single seeds through a two-rule stage.
// Values outside both rules (14) pass through unchanged.
func ExampleConverter_ConvertValue() {
	var rs converter.RuleSet
	rs.Add(50, 98, 2)
	rs.Add(52, 50, 48)
	c := converter.New(rs)

	for _, seed := range []uint64{79, 14, 55, 13} {
		fmt.Println(seed, "->", c.ConvertValue(seed))
	}
	// Output:
	// 79 -> 81
	// 14 -> 14
	// 55 -> 57
	// 13 -> 13
}

// ExampleConverter_ConvertRange splits [90,102) at the rule boundaries 98 and 100.
func ExampleConverter_ConvertRange() {
	var rs converter.RuleSet
	rs.Add(50, 98, 2)
	rs.Add(52, 50, 48)
	c := converter.New(rs)

	fmt.Println(c.ConvertRange(interval.New(90, 12)))
	// Output:
	// [[92,100) [50,52) [100,102)]
}
