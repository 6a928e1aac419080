// Package grid describes the geometry of spatial integration grids.
//
// A uniform grid stores no per-point coordinates: points live on a regular
// rectilinear lattice and their positions follow from an origin, three axis
// step vectors, and per-axis point counts. Coordinates are derived on demand
// through [Uniform.PointCoordinate], which keeps large cube grids cheap to
// describe.
package grid

import (
	"errors"
	"math"
)

var (
	ErrNegativeShape = errors.New("grid: shape components must be non-negative")
	ErrSingularAxes  = errors.New("grid: axis vectors are singular")
	ErrBufferLength  = errors.New("grid: buffer length does not match point count")
)

// Uniform describes a regular rectilinear grid.
//
// Axes[i] is the displacement between two neighbouring points along grid
// axis i; Shape[i] is the number of points along that axis. Points are
// enumerated with axis 0 slowest and axis 2 fastest, so the flat index of
// the point (i0, i1, i2) is (i0*Shape[1]+i1)*Shape[2]+i2.
type Uniform struct {
	Origin [3]float64
	Axes   [3][3]float64
	Shape  [3]int
}

// Validate reports whether the descriptor is usable: all shape components
// must be non-negative and the axis vectors must span a non-degenerate cell.
func (g Uniform) Validate() error {
	for _, n := range g.Shape {
		if n < 0 {
			return ErrNegativeShape
		}
	}
	if g.CellVolume() == 0 {
		return ErrSingularAxes
	}
	return nil
}

// NumPoint returns the total number of grid points.
func (g Uniform) NumPoint() int {
	return g.Shape[0] * g.Shape[1] * g.Shape[2]
}

// PointCoordinate maps the integer grid index (i0, i1, i2) to its Cartesian
// position. The mapping is pure; indices outside the shape extrapolate the
// lattice.
func (g Uniform) PointCoordinate(i0, i1, i2 int) [3]float64 {
	a, b, c := float64(i0), float64(i1), float64(i2)
	var p [3]float64
	for d := range 3 {
		p[d] = g.Origin[d] + a*g.Axes[0][d] + b*g.Axes[1][d] + c*g.Axes[2][d]
	}
	return p
}

// CellVolume returns the volume of one grid cell, |det(Axes)|. For a
// uniform grid this is the quadrature weight of every point.
func (g Uniform) CellVolume() float64 {
	m := g.Axes
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	return math.Abs(det)
}

// FillWeights writes the per-point quadrature weight (the constant cell
// volume) into dst. dst must have length NumPoint.
func (g Uniform) FillWeights(dst []float64) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if len(dst) != g.NumPoint() {
		return ErrBufferLength
	}
	w := g.CellVolume()
	for i := range dst {
		dst[i] = w
	}
	return nil
}
