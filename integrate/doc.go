// Package integrate reduces scalar fields sampled on integration grids to
// compact numbers: segmented weighted dot products and multipole moments.
//
// All entry points share the same discipline. Inputs are caller-owned and
// read-only; outputs are caller-allocated and written exactly once per
// element; validation happens before any output element is touched, so a
// failed call leaves the output untouched. Accumulation is deterministic:
// identical inputs reproduce results bit for bit across runs. The kernels
// keep no state between calls, so concurrent calls writing to disjoint
// output buffers are safe.
//
// Point ranges may be partitioned into segments (for example one segment
// per atom) by a slice of ascending offsets: offsets [0, 2, 4] describe two
// segments of two points each. A nil or empty offsets slice means a single
// segment covering every point.
package integrate
