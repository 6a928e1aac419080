package moments

import "fmt"

// TranslateCartesian re-expands Cartesian moments about a shifted center.
//
// src holds moments of some field about a center c, ordered as produced with
// [TypeCartesian] up to order l. dst receives the moments of the same field
// about c + shift. Because the monomials relative to the new center expand
// binomially in the old ones, the translated moments are exact linear
// combinations of the originals; no field data is needed.
//
// dst and src must both have the [TypeCartesian] length for order l and must
// not alias.
func TranslateCartesian(dst, src []float64, l int, shift [3]float64) error {
	n, err := Count(l, TypeCartesian)
	if err != nil {
		return err
	}
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("moments: translate buffers length %d/%d, want %d: %w",
			len(dst), len(src), n, ErrLengthMismatch)
	}

	binom := binomialTable(l)
	sx := powerTable(-shift[0], l)
	sy := powerTable(-shift[1], l)
	sz := powerTable(-shift[2], l)

	for ap := l; ap >= 0; ap-- {
		for bp := l - ap; bp >= 0; bp-- {
			for cp := l - ap - bp; cp >= 0; cp-- {
				di, _ := CartesianIndex(ap, bp, cp)
				acc := 0.0
				for a := 0; a <= ap; a++ {
					for b := 0; b <= bp; b++ {
						for c := 0; c <= cp; c++ {
							si, _ := CartesianIndex(a, b, c)
							w := binom[ap][a] * binom[bp][b] * binom[cp][c] *
								sx[ap-a] * sy[bp-b] * sz[cp-c]
							acc += w * src[si]
						}
					}
				}
				dst[di] = acc
			}
		}
	}
	return nil
}

// binomialTable returns Pascal's triangle up to row n.
func binomialTable(n int) [][]float64 {
	rows := make([][]float64, n+1)
	for i := range rows {
		rows[i] = make([]float64, i+1)
		rows[i][0] = 1
		rows[i][i] = 1
		for j := 1; j < i; j++ {
			rows[i][j] = rows[i-1][j-1] + rows[i-1][j]
		}
	}
	return rows
}

// powerTable returns [1, v, v², ..., v^n].
func powerTable(v float64, n int) []float64 {
	out := make([]float64, n+1)
	out[0] = 1
	for i := 1; i <= n; i++ {
		out[i] = out[i-1] * v
	}
	return out
}
