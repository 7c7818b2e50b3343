//go:build !smallnum_natural

package smallnum

// forceNaturalWidth short-circuits resolution to the natural pointer-sized
// rungs. Off by default; enabled by building with the smallnum_natural tag.
const forceNaturalWidth = false
