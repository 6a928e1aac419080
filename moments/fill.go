package moments

import (
	"fmt"
	"math"
)

// Fill evaluates every basis component of convention t up to order l at the
// displacement (x, y, z) and writes the values into dst. dst must have
// exactly the length reported by [Count].
func Fill(dst []float64, x, y, z float64, l int, t Type) error {
	n, err := Count(l, t)
	if err != nil {
		return err
	}
	if l > MaxOrder {
		return ErrOrderTooHigh
	}
	if len(dst) != n {
		return fmt.Errorf("moments: dst length %d, want %d for order %d %s: %w",
			len(dst), n, l, t, ErrLengthMismatch)
	}

	switch t {
	case TypeCartesian:
		fillCartesian(dst, x, y, z, l)
	case TypePure:
		fillPure(dst, x, y, z, l)
	case TypeRadial:
		fillRadial(dst, x, y, z, l)
	}
	return nil
}

// fillCartesian builds each degree shell from the previous one. The degree-l
// shell consists of x times the full degree-(l-1) shell, followed by y times
// its trailing x-free entries, followed by z times its last entry (z^(l-1)).
func fillCartesian(dst []float64, x, y, z float64, l int) {
	dst[0] = 1
	for ll := 1; ll <= l; ll++ {
		off := shellOffset(ll)
		prev := shellOffset(ll - 1)
		prevSize := shellSize(ll - 1)

		for i := range prevSize {
			dst[off+i] = x * dst[prev+i]
		}
		for i := range ll {
			dst[off+prevSize+i] = y * dst[prev+prevSize-ll+i]
		}
		dst[off+shellSize(ll)-1] = z * dst[prev+prevSize-1]
	}
}

// fillPure builds real regular solid harmonics shell by shell.
//
// Within the shell of order ll (offset ll²) the layout is C_l0 at 0 and,
// for m >= 1, C_lm at 2m-1 and S_lm at 2m. The m = 0 column follows the
// Legendre-style vertical recurrence, the interior columns the general
// vertical recurrence, and the m = ll pair the diagonal recurrence.
func fillPure(dst []float64, x, y, z float64, l int) {
	dst[0] = 1
	if l == 0 {
		return
	}
	dst[1] = z
	dst[2] = x
	dst[3] = y

	r2 := x*x + y*y + z*z
	for ll := 2; ll <= l; ll++ {
		off := ll * ll
		prev := (ll - 1) * (ll - 1)
		pprev := (ll - 2) * (ll - 2)
		k := float64(2*ll - 1)

		dst[off] = (k*z*dst[prev] - float64(ll-1)*r2*dst[pprev]) / float64(ll)

		for m := 1; m < ll-1; m++ {
			sub := math.Sqrt(float64((ll-1+m)*(ll-1-m))) * r2
			inv := 1 / math.Sqrt(float64((ll+m)*(ll-m)))
			dst[off+2*m-1] = (k*z*dst[prev+2*m-1] - sub*dst[pprev+2*m-1]) * inv
			dst[off+2*m] = (k*z*dst[prev+2*m] - sub*dst[pprev+2*m]) * inv
		}

		// m = ll-1: the order ll-2 shell has no such column, and its
		// coefficient in the vertical recurrence vanishes anyway.
		m := ll - 1
		inv := 1 / math.Sqrt(float64((ll+m)*(ll-m)))
		dst[off+2*m-1] = k * z * dst[prev+2*m-1] * inv
		dst[off+2*m] = k * z * dst[prev+2*m] * inv

		f := math.Sqrt(k / float64(2*ll))
		cp, sp := dst[prev+2*ll-3], dst[prev+2*ll-2]
		dst[off+2*ll-1] = f * (x*cp - y*sp)
		dst[off+2*ll] = f * (y*cp + x*sp)
	}
}

func fillRadial(dst []float64, x, y, z float64, l int) {
	dst[0] = 1
	if l == 0 {
		return
	}
	r := math.Sqrt(x*x + y*y + z*z)
	for i := 1; i <= l; i++ {
		dst[i] = dst[i-1] * r
	}
}
