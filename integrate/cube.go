package integrate

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-grid/grid"
	"github.com/cwbudde/algo-grid/moments"
)

// CubeMoments computes the multipole moments of a field sampled on a
// uniform grid, about center, up to order l under convention t:
//
//	out[m] = Σ_p data[p] * w * basis_m(r_p - center)
//
// where r_p follows from the grid descriptor and w is the grid's constant
// cell volume. Point coordinates are derived from grid indices on the fly;
// no coordinate array is built. Points are visited in lexicographic index
// order, matching the flat layout of data.
//
// data must have length g.NumPoint() and out the component count reported
// by [moments.Count] for (l, t).
func CubeMoments(data []float64, g grid.Uniform, center [3]float64, l int, t moments.Type, out []float64) error {
	if err := g.Validate(); err != nil {
		return err
	}
	basis, err := moments.NewBasis(l, t)
	if err != nil {
		return err
	}
	if len(data) != g.NumPoint() {
		return fmt.Errorf("integrate: data length %d, want %d grid points: %w",
			len(data), g.NumPoint(), ErrLengthMismatch)
	}
	if len(out) != basis.Len() {
		return fmt.Errorf("integrate: output length %d, want %d components: %w",
			len(out), basis.Len(), ErrLengthMismatch)
	}

	clear(out)
	buf := make([]float64, basis.Len())
	p := 0
	for i0 := range g.Shape[0] {
		for i1 := range g.Shape[1] {
			for i2 := range g.Shape[2] {
				r := g.PointCoordinate(i0, i1, i2)
				basis.Fill(buf, r[0]-center[0], r[1]-center[1], r[2]-center[2])
				floats.AddScaled(out, data[p], buf)
				p++
			}
		}
	}
	vecmath.ScaleBlock(out, out, g.CellVolume())
	return nil
}
