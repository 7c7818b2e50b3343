package smallnum

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Kind identifies one rung of the width ladder: a concrete integer width plus
// signedness. The zero value is KindInvalid.
type Kind int

// Constants representing the candidate widths, narrowest first per signedness.
// KindUword and KindIword are the platform's natural pointer-sized widths; the
// resolvers only return them when built with the smallnum_natural tag.
const (
	KindInvalid Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindUword
	KindI8
	KindI16
	KindI32
	KindI64
	KindIword
)

// unsignedLadder and signedLadder order the candidate rungs narrowest first.
// The widest rung covers anything expressible in the platform's pointer-sized
// integer, so resolution over either ladder is total.
var (
	unsignedLadder = []Kind{KindU8, KindU16, KindU32, KindU64}
	signedLadder   = []Kind{KindI8, KindI16, KindI32, KindI64}
)

// UnsignedKind returns the narrowest unsigned Kind whose range covers 0..max
// inclusive. Boundaries are inclusive: UnsignedKind(255) is KindU8 and
// UnsignedKind(256) is KindU16. A max of 0 still resolves to KindU8.
//
// When built with the smallnum_natural tag, UnsignedKind always returns
// KindUword.
func UnsignedKind(max uint64) Kind {
	if forceNaturalWidth {
		return KindUword
	}
	for _, k := range unsignedLadder {
		if max <= k.Umax() {
			return k
		}
	}
	return KindU64
}

// SignedKind returns the narrowest signed Kind whose range covers the
// inclusive interval [min, max]. The arguments are reordered if min > max, so
// the result depends only on the interval they span.
//
// When built with the smallnum_natural tag, SignedKind always returns
// KindIword.
func SignedKind(min, max int64) Kind {
	if min > max {
		min, max = max, min
	}
	if forceNaturalWidth {
		return KindIword
	}
	for _, k := range signedLadder {
		if k.Smin() <= min && max <= k.Smax() {
			return k
		}
	}
	return KindI64
}

// SymmetricKind returns the narrowest signed Kind able to hold both +|bound|
// and -|bound|. A single signed bound is read as a symmetric magnitude, so
// SymmetricKind(-128) is KindI16: the resolved type must also hold +128.
//
// The only unrepresentable input is math.MinInt64, whose magnitude exceeds
// every supported width; it yields ErrUnrepresentable.
func SymmetricKind(bound int64) (Kind, error) {
	if bound == math.MinInt64 {
		return KindInvalid, fmt.Errorf("%w: magnitude of %d", ErrUnrepresentable, bound)
	}
	if bound < 0 {
		bound = -bound
	}
	return SignedKind(-bound, bound), nil
}

// KindOf returns the Kind describing the native Go integer type T. The word
// types uint, int, uintptr, Uword and Iword report as KindUword or KindIword;
// every other integer type reports the fixed rung of its width. KindOf
// describes a concrete type, so it is unaffected by the smallnum_natural tag.
func KindOf[T constraints.Integer]() Kind {
	var zero T

	switch any(zero).(type) {
	case uint, uintptr, Uword:
		return KindUword
	case int, Iword:
		return KindIword
	}

	// Signed types wrap below zero when decremented; unsigned wrap to max.
	signed := zero-1 < zero

	switch unsafe.Sizeof(zero) {
	case 1:
		if signed {
			return KindI8
		}
		return KindU8
	case 2:
		if signed {
			return KindI16
		}
		return KindU16
	case 4:
		if signed {
			return KindI32
		}
		return KindU32
	case 8:
		if signed {
			return KindI64
		}
		return KindU64
	default:
		return KindInvalid
	}
}

// Valid reports whether k names a concrete rung.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindIword
}

// Signed reports whether k is a signed rung.
func (k Kind) Signed() bool {
	return k >= KindI8 && k <= KindIword
}

// Bits returns the width of k in bits, or 0 for KindInvalid.
func (k Kind) Bits() int {
	switch k {
	case KindU8, KindI8:
		return 8
	case KindU16, KindI16:
		return 16
	case KindU32, KindI32:
		return 32
	case KindU64, KindI64:
		return 64
	case KindUword, KindIword:
		return bits.UintSize
	default:
		return 0
	}
}

// Bytes returns the width of k in bytes, or 0 for KindInvalid.
func (k Kind) Bytes() int {
	return k.Bits() / 8
}

// Umax returns the largest value representable by an unsigned rung. It is 0
// for signed rungs and KindInvalid.
func (k Kind) Umax() uint64 {
	switch k {
	case KindU8:
		return math.MaxUint8
	case KindU16:
		return math.MaxUint16
	case KindU32:
		return math.MaxUint32
	case KindU64:
		return math.MaxUint64
	case KindUword:
		return uint64(^uint(0))
	default:
		return 0
	}
}

// Smin returns the smallest value representable by a signed rung. It is 0 for
// unsigned rungs and KindInvalid.
func (k Kind) Smin() int64 {
	switch k {
	case KindI8:
		return math.MinInt8
	case KindI16:
		return math.MinInt16
	case KindI32:
		return math.MinInt32
	case KindI64:
		return math.MinInt64
	case KindIword:
		return math.MinInt
	default:
		return 0
	}
}

// Smax returns the largest value representable by a signed rung. It is 0 for
// unsigned rungs and KindInvalid.
func (k Kind) Smax() int64 {
	switch k {
	case KindI8:
		return math.MaxInt8
	case KindI16:
		return math.MaxInt16
	case KindI32:
		return math.MaxInt32
	case KindI64:
		return math.MaxInt64
	case KindIword:
		return math.MaxInt
	default:
		return 0
	}
}

// String returns a short name for the rung ("u8", "i16", "uint", "int").
func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindUword:
		return "uint"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindIword:
		return "int"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// GoType returns the native Go type name for the rung ("uint16", "int8").
// It is empty for KindInvalid.
func (k Kind) GoType() string {
	switch k {
	case KindU8:
		return "uint8"
	case KindU16:
		return "uint16"
	case KindU32:
		return "uint32"
	case KindU64:
		return "uint64"
	case KindUword:
		return "uint"
	case KindI8:
		return "int8"
	case KindI16:
		return "int16"
	case KindI32:
		return "int32"
	case KindI64:
		return "int64"
	case KindIword:
		return "int"
	default:
		return ""
	}
}

// TypeName returns the name of the smallnum value type for the rung ("U16",
// "Iword"). It is empty for KindInvalid.
func (k Kind) TypeName() string {
	switch k {
	case KindU8:
		return "U8"
	case KindU16:
		return "U16"
	case KindU32:
		return "U32"
	case KindU64:
		return "U64"
	case KindUword:
		return "Uword"
	case KindI8:
		return "I8"
	case KindI16:
		return "I16"
	case KindI32:
		return "I32"
	case KindI64:
		return "I64"
	case KindIword:
		return "Iword"
	default:
		return ""
	}
}
