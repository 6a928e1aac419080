package integrate

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-grid/grid"
	"github.com/cwbudde/algo-grid/internal/testutil"
	"github.com/cwbudde/algo-grid/moments"
)

func unitCube(n int) grid.Uniform {
	return grid.Uniform{
		Axes:  [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Shape: [3]int{n, n, n},
	}
}

func TestCubeMoments_OrderZeroUnitCube(t *testing.T) {
	// 2x2x2 grid with unit spacing and all-ones data: the order-0 moment is
	// the point count times the unit cell volume.
	g := unitCube(2)
	out := make([]float64, 1)
	center := [3]float64{0.5, 0.5, 0.5}

	if err := CubeMoments(testutil.Ones(8), g, center, 0, moments.TypeCartesian, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireNearlyEqual(t, out[0], 8.0, tolerance)
}

func TestCubeMoments_OrderZeroMatchesSegmentedDot(t *testing.T) {
	g := grid.Uniform{
		Origin: [3]float64{-1, 0, 2},
		Axes:   [3][3]float64{{0.3, 0, 0}, {0, 0.4, 0}, {0, 0, 0.5}},
		Shape:  [3]int{3, 4, 5},
	}
	data := testutil.DeterministicNoise(21, 1, g.NumPoint())

	weights := make([]float64, g.NumPoint())
	if err := g.FillWeights(weights); err != nil {
		t.Fatalf("fill weights: %v", err)
	}
	dot := make([]float64, 1)
	if err := SegmentedDot(Batch{data}, weights, nil, dot); err != nil {
		t.Fatalf("segmented dot: %v", err)
	}

	mom := make([]float64, 1)
	if err := CubeMoments(data, g, [3]float64{}, 0, moments.TypeCartesian, mom); err != nil {
		t.Fatalf("cube moments: %v", err)
	}
	testutil.RequireNearlyEqual(t, mom[0], dot[0], 1e-12)
}

func TestCubeMoments_MatchesPointMoments(t *testing.T) {
	g := grid.Uniform{
		Origin: [3]float64{-0.5, -0.5, -0.5},
		Axes:   [3][3]float64{{0.25, 0, 0}, {0, 0.25, 0}, {0, 0, 0.25}},
		Shape:  [3]int{5, 4, 3},
	}
	data := testutil.DeterministicNoise(22, 1, g.NumPoint())
	center := [3]float64{0.1, -0.2, 0.05}
	points := testutil.LatticePoints(g)

	for _, typ := range []moments.Type{moments.TypeCartesian, moments.TypePure, moments.TypeRadial} {
		nm, _ := moments.Count(3, typ)

		cube := make([]float64, nm)
		if err := CubeMoments(data, g, center, 3, typ, cube); err != nil {
			t.Fatalf("%s cube: %v", typ, err)
		}

		// PointMoments applies no quadrature weight; fold the constant cell
		// volume into the data first.
		folded := make([]float64, len(data))
		weights := make([]float64, len(data))
		if err := g.FillWeights(weights); err != nil {
			t.Fatalf("fill weights: %v", err)
		}
		if err := FoldWeights(folded, data, weights); err != nil {
			t.Fatalf("fold: %v", err)
		}
		pts := make([]float64, nm)
		if err := PointMoments(Batch{folded}, points, center, 3, typ, nil, pts); err != nil {
			t.Fatalf("%s points: %v", typ, err)
		}

		testutil.RequireSliceNearlyEqual(t, cube, pts, 1e-12)
	}
}

func TestCubeMoments_DipoleOfSymmetricField(t *testing.T) {
	// A constant field on a cube is symmetric about the centroid, so all
	// three dipole components must vanish there.
	g := unitCube(4)
	center := [3]float64{1.5, 1.5, 1.5}
	out := make([]float64, 4)

	if err := CubeMoments(testutil.Ones(64), g, center, 1, moments.TypeCartesian, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireNearlyEqual(t, out[0], 64.0, tolerance)
	testutil.RequireSliceNearlyEqual(t, out[1:], []float64{0, 0, 0}, 1e-12)
}

func TestCubeMoments_EmptyGrid(t *testing.T) {
	g := unitCube(2)
	g.Shape[0] = 0
	out := []float64{-1}

	if err := CubeMoments(nil, g, [3]float64{}, 0, moments.TypeCartesian, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireNearlyEqual(t, out[0], 0, 0)
}

func TestCubeMoments_Errors(t *testing.T) {
	g := unitCube(2)
	data := testutil.Ones(8)
	out := []float64{-1, -1, -1, -1}

	err := CubeMoments(data, g, [3]float64{}, 1, moments.Type(99), out)
	if !errors.Is(err, moments.ErrUnknownType) {
		t.Errorf("unknown type: got %v, want moments.ErrUnknownType", err)
	}
	// Failed validation must leave the output untouched.
	testutil.RequireSliceNearlyEqual(t, out, []float64{-1, -1, -1, -1}, 0)

	if err := CubeMoments(data, g, [3]float64{}, -1, moments.TypeCartesian, out); !errors.Is(err, moments.ErrNegativeOrder) {
		t.Errorf("negative order: got %v, want moments.ErrNegativeOrder", err)
	}
	if err := CubeMoments(testutil.Ones(7), g, [3]float64{}, 1, moments.TypeCartesian, out); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short data: got %v, want ErrLengthMismatch", err)
	}
	if err := CubeMoments(data, g, [3]float64{}, 1, moments.TypeCartesian, out[:3]); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short output: got %v, want ErrLengthMismatch", err)
	}

	bad := g
	bad.Shape[2] = -1
	if err := CubeMoments(data, bad, [3]float64{}, 1, moments.TypeCartesian, out); !errors.Is(err, grid.ErrNegativeShape) {
		t.Errorf("bad grid: got %v, want grid.ErrNegativeShape", err)
	}
}
