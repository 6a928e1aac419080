package moments

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeOrder  = errors.New("moments: order must be non-negative")
	ErrOrderTooHigh   = errors.New("moments: order exceeds MaxOrder")
	ErrUnknownType    = errors.New("moments: unknown moment type")
	ErrLengthMismatch = errors.New("moments: buffer length does not match component count")
)

// MaxOrder is the highest angular order supported by [Fill]. The solid
// harmonic recurrences have been verified against the addition theorem up to
// this order; beyond it the results are not guaranteed accurate.
const MaxOrder = 24

// Type selects a moment basis convention.
type Type int

const (
	// TypeCartesian selects monomial moments x^a y^b z^c.
	TypeCartesian Type = iota

	// TypePure selects Racah-normalized real regular solid harmonics.
	TypePure

	// TypeRadial selects radial powers r^l.
	TypeRadial
)

// String returns a human-readable name for the convention.
func (t Type) String() string {
	switch t {
	case TypeCartesian:
		return "cartesian"
	case TypePure:
		return "pure"
	case TypeRadial:
		return "radial"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Count returns the number of basis components for all orders up to and
// including l under convention t.
func Count(l int, t Type) (int, error) {
	if l < 0 {
		return 0, ErrNegativeOrder
	}
	switch t {
	case TypeCartesian:
		return (l + 1) * (l + 2) * (l + 3) / 6, nil
	case TypePure:
		return (l + 1) * (l + 1), nil
	case TypeRadial:
		return l + 1, nil
	default:
		return 0, ErrUnknownType
	}
}

// shellOffset returns the index of the first degree-l component in a
// Cartesian basis vector.
func shellOffset(l int) int {
	return l * (l + 1) * (l + 2) / 6
}

// shellSize returns the number of degree-l Cartesian components.
func shellSize(l int) int {
	return (l + 1) * (l + 2) / 2
}

// CartesianIndex returns the position of the monomial x^a y^b z^c within a
// Cartesian basis vector. All exponents must be non-negative.
func CartesianIndex(a, b, c int) (int, error) {
	if a < 0 || b < 0 || c < 0 {
		return 0, ErrNegativeOrder
	}
	l := a + b + c
	d := l - a
	return shellOffset(l) + d*(d+1)/2 + (l - a - b), nil
}
