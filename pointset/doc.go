// Package pointset stores batches of points in the unit hypercube and
// measures how evenly they cover it.
//
// 🚀 What is it for?
//
//	Halton generators hand out points one batch at a time. A Set keeps such
//	a batch in one row-major buffer (point i, dimension j at i*d + j) and
//	the helpers below answer "how uniform is this?":
//	  • ColumnMeans / Summarize — per-dimension moments and quartiles
//	  • Stream                  — bounded-memory quantiles over many chunks
//	  • StarL2 / CenteredL2     — exact L2 discrepancies (lower is better)
//
// ⚙️ Usage:
//
//	g, _ := sequence.New(2)
//	set, _ := g.NextSet(1024)
//	d, _ := pointset.StarL2(set)
//	sum, _ := pointset.Summarize(set)
//
// Errors are sentinels (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch,
// ErrEmpty) wrapped with the method name; match them with errors.Is.
package pointset
