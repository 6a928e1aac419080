package moments

// Basis is a validated (order, convention) pair ready for repeated
// evaluation. It is the allocation-free entry point for callers that fill
// the same basis at many points; one-shot callers can use [Fill] directly.
type Basis struct {
	l int
	t Type
	n int
}

// NewBasis validates the order and convention and returns a reusable basis.
func NewBasis(l int, t Type) (Basis, error) {
	n, err := Count(l, t)
	if err != nil {
		return Basis{}, err
	}
	if l > MaxOrder {
		return Basis{}, ErrOrderTooHigh
	}
	return Basis{l: l, t: t, n: n}, nil
}

// Len returns the number of basis components.
func (b Basis) Len() int { return b.n }

// Order returns the maximum angular order.
func (b Basis) Order() int { return b.l }

// Type returns the convention.
func (b Basis) Type() Type { return b.t }

// Fill evaluates the basis at the displacement (x, y, z). dst must have
// length [Basis.Len]; shorter slices panic.
func (b Basis) Fill(dst []float64, x, y, z float64) {
	switch b.t {
	case TypeCartesian:
		fillCartesian(dst[:b.n], x, y, z, b.l)
	case TypePure:
		fillPure(dst[:b.n], x, y, z, b.l)
	case TypeRadial:
		fillRadial(dst[:b.n], x, y, z, b.l)
	}
}
