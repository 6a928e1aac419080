package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-grid/grid"
)

// DC returns a constant-valued field.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a field of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RandomPoints returns npoint coordinate triples drawn uniformly from the
// cube [-extent, extent]³, with a fixed seed.
func RandomPoints(seed int64, extent float64, npoint int) []float64 {
	out := make([]float64, 3*npoint)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * extent
	}
	return out
}

// Gaussian3D samples exp(-|r-center|²/(2*width²)) at the given coordinate
// triples.
func Gaussian3D(points []float64, center [3]float64, width float64) []float64 {
	n := len(points) / 3
	out := make([]float64, n)
	inv := 1 / (2 * width * width)
	for p := range n {
		dx := points[3*p] - center[0]
		dy := points[3*p+1] - center[1]
		dz := points[3*p+2] - center[2]
		out[p] = math.Exp(-(dx*dx + dy*dy + dz*dz) * inv)
	}
	return out
}

// LatticePoints materializes the coordinate triples of a uniform grid in
// lexicographic index order, for cross-checking cube kernels against their
// explicit-coordinate counterparts.
func LatticePoints(g grid.Uniform) []float64 {
	out := make([]float64, 0, 3*g.NumPoint())
	for i0 := range g.Shape[0] {
		for i1 := range g.Shape[1] {
			for i2 := range g.Shape[2] {
				r := g.PointCoordinate(i0, i1, i2)
				out = append(out, r[0], r[1], r[2])
			}
		}
	}
	return out
}
