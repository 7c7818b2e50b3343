//go:build amd64 || arm64

package smallnum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUint(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := FromUint[U8](0)
		require.NoError(t, err)
		assert.Equal(t, U8(0), got)
	})

	t.Run("valid boundary", func(t *testing.T) {
		got, err := FromUint[U8](math.MaxUint8)
		require.NoError(t, err)
		assert.Equal(t, U8(math.MaxUint8), got)
	})

	t.Run("one past boundary", func(t *testing.T) {
		_, err := FromUint[U8](math.MaxUint8 + 1)
		require.Error(t, err)

		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, "256", oor.Value)
		assert.Equal(t, KindU8, oor.Kind)
	})

	t.Run("wider rungs accept what narrow ones reject", func(t *testing.T) {
		got, err := FromUint[U16](math.MaxUint8 + 1)
		require.NoError(t, err)
		assert.Equal(t, U16(256), got)
	})

	t.Run("word rung accepts any uint", func(t *testing.T) {
		got, err := FromUint[Uword](math.MaxUint)
		require.NoError(t, err)
		assert.Equal(t, Uword(math.MaxUint), got)
	})
}

func TestTruncUint(t *testing.T) {
	assert.Equal(t, U8(200), TruncUint[U8](200))
	assert.Equal(t, U8(0), TruncUint[U8](math.MaxUint8+1), "truncation wraps at the width boundary")
	assert.Equal(t, U8(1), TruncUint[U8](math.MaxUint8+2))
	assert.Equal(t, U16(0), TruncUint[U16](math.MaxUint16+1))
}

func TestUnsignedRoundTrip(t *testing.T) {
	values := []uint{0, 1, 200, math.MaxUint8, math.MaxUint8 + 1, math.MaxUint16, 100_000}

	for _, v := range values {
		u32, err := FromUint[U32](v)
		require.NoError(t, err)
		assert.Equal(t, v, u32.Uint(), "widening then narrowing must be exact")

		back, err := FromUint[U32](u32.Uint())
		require.NoError(t, err)
		assert.Equal(t, u32, back)
	}
}

func TestSmallUnsignedAccessor(t *testing.T) {
	// One code path over every unsigned rung.
	values := []SmallUnsigned{U8(200), U16(500), U32(100_000), U64(4_300_000_000), Uword(7)}

	var sum uint
	for _, v := range values {
		sum += v.Uint()
	}

	assert.Equal(t, uint(200+500+100_000+4_300_000_000+7), sum)
}

func TestUnsignedIntAccessor(t *testing.T) {
	assert.Equal(t, 200, U8(200).Int())
	assert.Equal(t, 500, U16(500).Int())
	assert.Equal(t, 100_000, U32(100_000).Int())
	assert.Equal(t, 4_300_000_000, U64(4_300_000_000).Int())
}

func TestUnsignedComparisons(t *testing.T) {
	// Native integer semantics carry over to the value types.
	assert.True(t, U16(5) < U16(6))
	assert.True(t, U16(6) == U16(6))
	assert.True(t, U16(7) > U16(6))

	a, b := U16(300), U16(300)
	assert.Equal(t, a.Uint() == b.Uint(), a == b, "equality agrees with natural-width comparison")
}
