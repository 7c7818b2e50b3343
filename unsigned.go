package smallnum

import "strconv"

// U8, U16, U32 and U64 are the unsigned rungs of the width ladder. Uword is
// the platform's natural pointer-sized unsigned width, used when resolution is
// built with the smallnum_natural tag. All five behave as ordinary unsigned
// integers: literals, arithmetic, comparison and array indexing work directly.
type (
	// U8 is an unsigned value bounded by math.MaxUint8.
	U8 uint8
	// U16 is an unsigned value bounded by math.MaxUint16.
	U16 uint16
	// U32 is an unsigned value bounded by math.MaxUint32.
	U32 uint32
	// U64 is an unsigned value bounded by math.MaxUint64.
	U64 uint64
	// Uword is an unsigned value of the natural pointer-sized width.
	Uword uint
)

// SmallUnsigned is the uniform accessor implemented by every unsigned rung.
// Code written against SmallUnsigned works unchanged whichever width the
// resolver picked.
type SmallUnsigned interface {
	// Uint returns the value widened to the natural unsigned width. The
	// widening is lossless for any bound a rung can be resolved for.
	Uint() uint
}

// UnsignedValue constrains a type parameter to the unsigned rungs.
type UnsignedValue interface {
	U8 | U16 | U32 | U64 | Uword
}

// Uint returns the value widened to the natural unsigned width.
func (v U8) Uint() uint { return uint(v) }

// Uint returns the value widened to the natural unsigned width.
func (v U16) Uint() uint { return uint(v) }

// Uint returns the value widened to the natural unsigned width.
func (v U32) Uint() uint { return uint(v) }

// Uint returns the value widened to the natural unsigned width.
func (v U64) Uint() uint { return uint(v) }

// Uint returns the value as the natural unsigned width.
func (v Uword) Uint() uint { return uint(v) }

// Int returns the value as the natural signed width. Exact whenever the
// declared bound fits int, which holds for any bound derived from a
// collection capacity.
func (v U8) Int() int { return int(v) }

// Int returns the value as the natural signed width. Exact whenever the
// declared bound fits int.
func (v U16) Int() int { return int(v) }

// Int returns the value as the natural signed width. Exact whenever the
// declared bound fits int.
func (v U32) Int() int { return int(v) }

// Int returns the value as the natural signed width. Exact whenever the
// declared bound fits int.
func (v U64) Int() int { return int(v) }

// Int returns the value as the natural signed width. Exact whenever the
// declared bound fits int.
func (v Uword) Int() int { return int(v) }

// FromUint converts a natural-width unsigned value into the rung T, checking
// that it fits. A value outside T's range returns *OutOfRangeError. This is
// the default construction path; see TruncUint for the unchecked one.
func FromUint[T UnsignedValue](v uint) (T, error) {
	if uint64(v) > uint64(^T(0)) {
		return 0, &OutOfRangeError{
			Value: strconv.FormatUint(uint64(v), 10),
			Kind:  KindOf[T](),
		}
	}
	return T(v), nil
}

// TruncUint converts a natural-width unsigned value into the rung T without
// checking. A value outside T's range is silently truncated to T's width.
// This is a deliberate unchecked fast path for callers that have already
// established the value fits the declared bound; everyone else should use
// FromUint.
func TruncUint[T UnsignedValue](v uint) T {
	return T(v)
}
