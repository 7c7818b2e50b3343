//go:build smallnum_natural

package smallnum

// forceNaturalWidth short-circuits resolution to the natural pointer-sized
// rungs. Enabled by the smallnum_natural build tag, for targets that prefer a
// single uniform width over maximal memory savings.
const forceNaturalWidth = true
