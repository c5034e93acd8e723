// Package testutil provides testing utilities for labelcell.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible label observations and cells.
//
// # Observations
//
//	rng := testutil.NewRNG(seed)
//	obs := rng.Observations(1000, 21, 1.0) // uniform labels, weights in (0, 1]
//	obs := rng.SkewedObservations(1000, 21, 1.5, 1.0) // Zipf labels
//
// # Cells
//
//	c := testutil.RandomCell[float64, [21]float64](rng, 10)
//	c := testutil.Accumulate[float64, [21]float64](obs)
package testutil
