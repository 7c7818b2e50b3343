// Package smallnum selects the smallest fixed-width integer type capable of
// representing a statically known bound.
//
// Smallnum targets embedded and memory-constrained code: indices into
// fixed-capacity collections, counters bounded by a known capacity, and
// metadata fields in space-sensitive structures, where a full-width int or
// uint wastes memory at scale (e.g. per-node overhead in large trees).
//
// # Width Ladder
//
// Candidate widths are 8, 16, 32 and 64 bits per signedness. Resolution picks
// the narrowest rung whose range covers the bound, boundary inclusive:
//
//	smallnum.UnsignedKind(255)  // u8
//	smallnum.UnsignedKind(256)  // u16
//	smallnum.SignedKind(-40, 125) // i8
//	smallnum.SymmetricKind(128)   // i16: must hold both +128 and -128
//
// # Value Types
//
// Each rung has a value type (U8..U64, I8..I64, plus the natural-width Uword
// and Iword) that behaves as an ordinary integer and implements the uniform
// accessors SmallUnsigned and SmallSigned:
//
//	const maxCapacity = 500
//	var idx smallnum.U16 = 5 // 2 bytes instead of 8
//
//	buf := make([]byte, maxCapacity)
//	_ = buf[idx.Uint()] // interop with natural-width indexing
//
// Construction from natural-width values is checked by default, with an
// explicit unchecked fast path:
//
//	v, err := smallnum.FromUint[smallnum.U16](65536) // *OutOfRangeError
//	v = smallnum.TruncUint[smallnum.U16](n)          // truncates silently
//
// # Code Generation
//
// The smallnumgen tool resolves bounds declared in a YAML manifest at build
// time and emits type aliases, making width selection part of the build:
//
//	//go:generate go run github.com/tnballo/smallnum/cmd/smallnumgen -config smallnum.yaml -out small_types.gen.go
//
// A bound no rung can represent makes generation (and therefore the build)
// fail; there is no runtime fallback for an insufficient width.
//
// # Natural-Width Opt-Out
//
// Building with the smallnum_natural tag disables minimization: every
// resolver returns the natural pointer-sized rung. Use it on targets that
// prefer a single uniform width over memory savings.
package smallnum
