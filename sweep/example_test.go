package sweep_test

import (
	"context"
	"fmt"

	"github.com/nadav-alali/fairsweep/dataset"
	"github.com/nadav-alali/fairsweep/oracle"
	"github.com/nadav-alali/fairsweep/sweep"
)

// ExampleRun_alwaysSatisfactory demonstrates a trivial oracle that always
// returns true: the entire domain is one satisfactory region.
func ExampleRun_alwaysSatisfactory() {
	ds, _ := dataset.New([]dataset.Item{
		{X: 2, Y: 0},
		{X: 0, Y: 2},
	})
	always := oracle.Func(func(_ []*dataset.Item) (bool, error) { return true, nil })

	boundaries, _, _ := sweep.Run(context.Background(), ds, always)
	for _, b := range boundaries {
		fmt.Printf("%.4f %s\n", b.Theta, b.Kind)
	}
	// Output:
	// 0.0000 start
	// 1.5708 end
}

// ExampleRun_rankZeroMustBeA demonstrates a single exchange: the oracle
// requires item A at rank 0, which fails once A and B swap at 45 degrees.
func ExampleRun_rankZeroMustBeA() {
	ds, _ := dataset.New([]dataset.Item{
		{X: 2, Y: 0, Groups: []string{"A"}},
		{X: 0, Y: 2, Groups: []string{"B"}},
	})
	rankZeroIsA := oracle.Func(func(ordering []*dataset.Item) (bool, error) {
		return ordering[0].Groups[0] == "A", nil
	})

	boundaries, stats, _ := sweep.Run(context.Background(), ds, rankZeroIsA)
	for _, b := range boundaries {
		fmt.Printf("%.4f %s\n", b.Theta, b.Kind)
	}
	fmt.Println("swaps:", stats.Swaps)
	// Output:
	// 0.0000 start
	// 0.7854 end
	// swaps: 1
}
