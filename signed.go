package smallnum

import "strconv"

// I8, I16, I32 and I64 are the signed rungs of the width ladder. Iword is the
// platform's natural pointer-sized signed width, used when resolution is built
// with the smallnum_natural tag.
type (
	// I8 is a signed value in math.MinInt8..math.MaxInt8.
	I8 int8
	// I16 is a signed value in math.MinInt16..math.MaxInt16.
	I16 int16
	// I32 is a signed value in math.MinInt32..math.MaxInt32.
	I32 int32
	// I64 is a signed value in math.MinInt64..math.MaxInt64.
	I64 int64
	// Iword is a signed value of the natural pointer-sized width.
	Iword int
)

// SmallSigned is the uniform accessor implemented by every signed rung.
type SmallSigned interface {
	// Int returns the value widened to the natural signed width. The
	// widening is lossless for any bound a rung can be resolved for.
	Int() int
}

// SignedValue constrains a type parameter to the signed rungs.
type SignedValue interface {
	I8 | I16 | I32 | I64 | Iword
}

// Int returns the value widened to the natural signed width.
func (v I8) Int() int { return int(v) }

// Int returns the value widened to the natural signed width.
func (v I16) Int() int { return int(v) }

// Int returns the value widened to the natural signed width.
func (v I32) Int() int { return int(v) }

// Int returns the value widened to the natural signed width.
func (v I64) Int() int { return int(v) }

// Int returns the value as the natural signed width.
func (v Iword) Int() int { return int(v) }

// FromInt converts a natural-width signed value into the rung T, checking
// that it fits. A value outside T's range returns *OutOfRangeError. This is
// the default construction path; see TruncInt for the unchecked one.
func FromInt[T SignedValue](v int) (T, error) {
	k := KindOf[T]()
	if int64(v) < k.Smin() || int64(v) > k.Smax() {
		return 0, &OutOfRangeError{
			Value: strconv.FormatInt(int64(v), 10),
			Kind:  k,
		}
	}
	return T(v), nil
}

// TruncInt converts a natural-width signed value into the rung T without
// checking. A value outside T's range is silently truncated to T's width.
// This is a deliberate unchecked fast path for callers that have already
// established the value fits the declared bound; everyone else should use
// FromInt.
func TruncInt[T SignedValue](v int) T {
	return T(v)
}
