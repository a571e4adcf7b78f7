// Package sequence generates classical and generalized (scrambled) Halton
// sequences: deterministic low-discrepancy points in [0,1)^D for quasi-Monte
// Carlo integration, sampling and experimental design.
//
// 🚀 How it works
//
//	Dimension j uses base b_j (the (j+1)-th prime by default) and a digit
//	permutation π_j. The point for index n is
//
//	  x_n = (φ_b0,π0(n), φ_b1,π1(n), …, φ_bD−1,πD−1(n))
//
//	where φ is the scrambled radical inverse (package radical). Tables come
//	from package permutation: Identity (classical Halton), Scrambled (Faure's
//	recursive permutations, the default) or Random (seeded).
//
// ⚙️ Usage:
//
//	g, err := sequence.New(3)                    // generalized, bases 2, 3, 5
//	pts, err := g.Next(1024)                     // indices 0…1023, cursor → 1024
//	g.Reset()                                    // replay from the start
//	more, err := g.Seek(4096, 512)               // any range, cursor untouched
//	par, err := sequence.Parallel(ctx, g, 0, 1<<16, 8)
//
//	h, err := sequence.New(2,
//	    sequence.WithSeed(42),                   // random scrambling, reproducible
//	    sequence.WithStart(1),                   // skip the origin
//	)
//
// Guarantees:
//   - Same configuration ⇒ same points for the same indices, across runs.
//   - Every coordinate lies in [0,1); index 0 maps to the origin.
//   - A failed call leaves the cursor where it was and returns no points.
//   - Next/NextInto/Reset/ResetTo are serialized per generator; Seek and
//     Parallel never touch the cursor and may run concurrently.
//
// Limits: at most MaxDimensions dimensions; indices are non-negative ints.
package sequence
