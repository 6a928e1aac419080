package integrate

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-grid/moments"
)

// PointMoments computes per-segment multipole moments of sampled fields
// whose point coordinates are given explicitly. For every vector v and
// segment s:
//
//	out[(v*nsegment+s)*nmoment+m] = Σ data[v][p] * basis_m(r_p - center)
//
// summed over the points of segment s in ascending order. points holds
// npoint coordinate triples (x0, y0, z0, x1, ...); all segments share the
// one center, so callers needing per-atom centers invoke once per atom.
//
// Quadrature weights are not applied here: fold them into the data first
// (see [FoldWeights]) or pass the weight vector itself to obtain the
// moments of the weight distribution.
func PointMoments(data Batch, points []float64, center [3]float64, l int, t moments.Type, segments []int, out []float64) error {
	if len(points)%3 != 0 {
		return fmt.Errorf("integrate: points length %d is not a multiple of 3: %w",
			len(points), ErrLengthMismatch)
	}
	npoint := len(points) / 3
	if err := data.validate(npoint); err != nil {
		return err
	}
	bounds, err := segmentBounds(segments, npoint)
	if err != nil {
		return err
	}
	basis, err := moments.NewBasis(l, t)
	if err != nil {
		return err
	}
	nseg := len(bounds) - 1
	nm := basis.Len()
	if len(out) != len(data)*nseg*nm {
		return fmt.Errorf("integrate: output length %d, want %d (%d vectors x %d segments x %d components): %w",
			len(out), len(data)*nseg*nm, len(data), nseg, nm, ErrLengthMismatch)
	}

	clear(out)
	buf := make([]float64, nm)
	for v, row := range data {
		for s := range nseg {
			slot := out[(v*nseg+s)*nm : (v*nseg+s+1)*nm]
			for p := bounds[s]; p < bounds[s+1]; p++ {
				basis.Fill(buf,
					points[3*p]-center[0],
					points[3*p+1]-center[1],
					points[3*p+2]-center[2])
				floats.AddScaled(slot, row[p], buf)
			}
		}
	}
	return nil
}
