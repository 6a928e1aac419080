// Package moments evaluates multipole moment bases at a displacement from
// an expansion center.
//
// Three conventions are supported, selected by [Type]:
//
//   - [TypeCartesian]: monomials x^a y^b z^c of total degree a+b+c <= l,
//     grouped by degree. Within one degree shell the exponent triples are
//     ordered by descending x power, then descending y power, so the shell
//     of degree 2 reads x², xy, xz, y², yz, z².
//   - [TypePure]: Racah-normalized real regular solid harmonics, so that
//     C₁₀ = z, C₁₁ = x, S₁₁ = y and C₂₀ = (3z²−r²)/2. Each shell is ordered
//     C_l0, C_l1, S_l1, ..., C_ll, S_ll. The values are built with the
//     standard diagonal and vertical recurrences, which stay well
//     conditioned up to [MaxOrder].
//   - [TypeRadial]: plain radial powers r^0 .. r^l.
//
// All conventions include the constant 1 as their order-0 component, so the
// order-0 moment of a weighted field is its plain weighted sum.
package moments
