package integrate

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrSegmentOrder   = errors.New("integrate: segment offsets must be ascending")
	ErrSegmentRange   = errors.New("integrate: segment offsets out of range")
	ErrLengthMismatch = errors.New("integrate: buffer length mismatch")
)

// Batch is a collection of independent data vectors sampled on the same
// grid. Rows may be non-contiguous in memory; the kernels only read through
// them and never retain them.
type Batch [][]float64

// validate checks that every row has exactly npoint elements.
func (b Batch) validate(npoint int) error {
	for v, row := range b {
		if len(row) != npoint {
			return fmt.Errorf("integrate: vector %d has length %d, want %d: %w",
				v, len(row), npoint, ErrLengthMismatch)
		}
	}
	return nil
}

// segmentBounds validates segment offsets against npoint and returns the
// boundary slice. A nil or empty slice stands for one segment covering the
// whole range. The returned slice has one more entry than there are
// segments.
func segmentBounds(segments []int, npoint int) ([]int, error) {
	if len(segments) == 0 {
		return []int{0, npoint}, nil
	}
	prev := 0
	for i, s := range segments {
		if s < 0 || s > npoint {
			return nil, fmt.Errorf("integrate: offset %d at index %d outside [0, %d]: %w",
				s, i, npoint, ErrSegmentRange)
		}
		if i > 0 && s < prev {
			return nil, fmt.Errorf("integrate: offset %d at index %d after %d: %w",
				s, i, prev, ErrSegmentOrder)
		}
		prev = s
	}
	return segments, nil
}

// SegmentedDot computes, for every (vector, segment) pair, the weighted sum
// of the vector over the points of that segment:
//
//	out[v*nsegment+s] = Σ data[v][p] * weights[p]   for p in segment s
//
// The point count is len(weights); every row of data must match it. The
// output must have exactly nvector*nsegment elements and is laid out
// vector-major. Summation is segment-local and deterministic for identical
// inputs.
//
// The weights slice is whatever the caller treats as the weight channel; to
// reduce one data vector against another, pass that vector as weights.
func SegmentedDot(data Batch, weights []float64, segments []int, out []float64) error {
	npoint := len(weights)
	if err := data.validate(npoint); err != nil {
		return err
	}
	bounds, err := segmentBounds(segments, npoint)
	if err != nil {
		return err
	}
	nseg := len(bounds) - 1
	if len(out) != len(data)*nseg {
		return fmt.Errorf("integrate: output length %d, want %d (%d vectors x %d segments): %w",
			len(out), len(data)*nseg, len(data), nseg, ErrLengthMismatch)
	}

	for v, row := range data {
		for s := range nseg {
			lo, hi := bounds[s], bounds[s+1]
			out[v*nseg+s] = floats.Dot(row[lo:hi], weights[lo:hi])
		}
	}
	return nil
}

// FoldWeights writes data[i]*weights[i] into dst, pre-folding quadrature
// weights into a data vector. All three slices must have the same length;
// dst may alias data.
func FoldWeights(dst, data, weights []float64) error {
	if len(dst) != len(data) || len(dst) != len(weights) {
		return fmt.Errorf("integrate: fold lengths %d/%d/%d differ: %w",
			len(dst), len(data), len(weights), ErrLengthMismatch)
	}
	vecmath.MulBlock(dst, data, weights)
	return nil
}
