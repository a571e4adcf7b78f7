package prime_test

import (
	"fmt"

	"github.com/katalvlaran/halton/prime"
)

// ExampleFirst lists the bases of a 6-dimensional Halton sequence.
func ExampleFirst() {
	bases, err := prime.First(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bases)
	// Output:
	// [2 3 5 7 11 13]
}
