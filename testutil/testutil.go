package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/labelcell"
)

// Observation is a single weighted label assignment.
type Observation struct {
	Label  labelcell.Label
	Weight float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Weights fills dst with values in [0, maxWeight). Roughly one in four entries
// is left at exactly zero so empty labels are exercised.
func (r *RNG) Weights(dst []float64, maxWeight float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		if r.rand.Intn(4) == 0 {
			dst[i] = 0
			continue
		}
		dst[i] = r.rand.Float64() * maxWeight
	}
}

// Observations returns n observations with uniform labels in [0, labels) and
// weights in (0, maxWeight].
func (r *RNG) Observations(n, labels int, maxWeight float64) []Observation {
	r.mu.Lock()
	defer r.mu.Unlock()

	obs := make([]Observation, n)
	for i := range obs {
		obs[i] = Observation{
			Label:  labelcell.Label(r.rand.Intn(labels)),
			Weight: (1 - r.rand.Float64()) * maxWeight,
		}
	}
	return obs
}

// SkewedObservations is like Observations but draws labels from a Zipf
// distribution, so label 0 dominates the way a majority class does in real
// segmentation output.
func (r *RNG) SkewedObservations(n, labels int, s, maxWeight float64) []Observation {
	r.mu.Lock()
	defer r.mu.Unlock()

	obs := make([]Observation, n)
	for i := range obs {
		obs[i] = Observation{
			Label:  labelcell.Label(r.zipfLocked(labels, s)),
			Weight: (1 - r.rand.Float64()) * maxWeight,
		}
	}
	return obs
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// RandomCell returns a cell with weights in [0, maxWeight), converted to W,
// and a zero hidden counter.
func RandomCell[W labelcell.Weight, H labelcell.Histogram[W]](r *RNG, maxWeight float64) labelcell.Cell[W, H] {
	var h H
	w := make([]float64, len(h))
	r.Weights(w, maxWeight)
	for i := range w {
		h[i] = W(w[i])
	}
	return labelcell.FromWeights[W](h)
}

// Accumulate folds observations into an empty cell with Observe.
func Accumulate[W labelcell.Weight, H labelcell.Histogram[W]](obs []Observation) labelcell.Cell[W, H] {
	var c labelcell.Cell[W, H]
	for _, o := range obs {
		c.Observe(o.Label, W(o.Weight))
	}
	return c
}

// Tally returns the exact per-label sum of observation weights, ignoring
// labels outside [0, labels).
func Tally(obs []Observation, labels int) []float64 {
	sums := make([]float64, labels)
	for _, o := range obs {
		if o.Label >= 0 && int(o.Label) < labels {
			sums[o.Label] += o.Weight
		}
	}
	return sums
}
