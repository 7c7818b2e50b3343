//go:build amd64 || arm64

package smallnum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := FromInt[I8](0)
		require.NoError(t, err)
		assert.Equal(t, I8(0), got)
	})

	t.Run("valid boundaries", func(t *testing.T) {
		hi, err := FromInt[I8](math.MaxInt8)
		require.NoError(t, err)
		assert.Equal(t, I8(math.MaxInt8), hi)

		lo, err := FromInt[I8](math.MinInt8)
		require.NoError(t, err)
		assert.Equal(t, I8(math.MinInt8), lo)
	})

	t.Run("one past either boundary", func(t *testing.T) {
		_, err := FromInt[I8](math.MaxInt8 + 1)
		require.Error(t, err)

		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, "128", oor.Value)
		assert.Equal(t, KindI8, oor.Kind)

		_, err = FromInt[I8](math.MinInt8 - 1)
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, "-129", oor.Value)
	})

	t.Run("wider rungs accept what narrow ones reject", func(t *testing.T) {
		got, err := FromInt[I16](math.MinInt8 - 1)
		require.NoError(t, err)
		assert.Equal(t, I16(-129), got)
	})

	t.Run("word rung accepts any int", func(t *testing.T) {
		got, err := FromInt[Iword](math.MinInt)
		require.NoError(t, err)
		assert.Equal(t, Iword(math.MinInt), got)
	})
}

func TestTruncInt(t *testing.T) {
	assert.Equal(t, I8(100), TruncInt[I8](100))
	assert.Equal(t, I8(-100), TruncInt[I8](-100))
	assert.Equal(t, I8(math.MinInt8), TruncInt[I8](math.MaxInt8+1), "truncation wraps at the width boundary")
	assert.Equal(t, I16(math.MinInt16), TruncInt[I16](math.MaxInt16+1))
}

func TestSignedRoundTrip(t *testing.T) {
	values := []int{math.MinInt16, -500, -1, 0, 1, 500, math.MaxInt16}

	for _, v := range values {
		i16, err := FromInt[I16](v)
		require.NoError(t, err)
		assert.Equal(t, v, i16.Int(), "widening then narrowing must be exact")

		back, err := FromInt[I16](i16.Int())
		require.NoError(t, err)
		assert.Equal(t, i16, back)
	}
}

func TestSmallSignedAccessor(t *testing.T) {
	values := []SmallSigned{I8(-100), I16(500), I32(-50_000), I64(2_200_000_000), Iword(-7)}

	var sum int
	for _, v := range values {
		sum += v.Int()
	}

	assert.Equal(t, -100+500-50_000+2_200_000_000-7, sum)
}

func TestSignedComparisons(t *testing.T) {
	assert.True(t, I16(-5) < I16(6))
	assert.True(t, I16(6) == I16(6))
	assert.True(t, I16(7) > I16(-6))

	a, b := I16(-300), I16(-300)
	assert.Equal(t, a.Int() == b.Int(), a == b, "equality agrees with natural-width comparison")
}
