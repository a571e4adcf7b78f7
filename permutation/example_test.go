package permutation_test

import (
	"fmt"

	"github.com/katalvlaran/halton/permutation"
)

// ExampleFor prints the Faure permutations for the first odd prime bases.
func ExampleFor() {
	for _, b := range []int{3, 5, 7} {
		tbl, err := permutation.For(b, permutation.Scrambled)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(b, tbl)
	}
	// Output:
	// 3 [0 1 2]
	// 5 [0 3 2 1 4]
	// 7 [0 2 5 3 1 4 6]
}
