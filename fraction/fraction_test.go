package fraction

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalizeTypicalDecimals(t *testing.T) {
	cases := []struct {
		in   float64
		want Fraction
	}{
		{2, Fraction{2, 1}},
		{0.75, Fraction{3, 4}},
		{145.5, Fraction{291, 2}},
		{0.333, Fraction{333, 1000}},
		{1.1, Fraction{11, 10}},
		{174.999, Fraction{174999, 1000}},
		{-0.5, Fraction{-1, 2}},
		{0, Fraction{0, 1}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("rationalize %v", c.in), func(t *testing.T) {
			assert.Equal(t, c.want, Rationalize(c.in))
		})
	}
}

func TestRationalizeBoundsDenominator(t *testing.T) {
	r := Rationalize(3.14159265358979)
	assert := assert.New(t)
	assert.LessOrEqual(r.Denominator, int64(MaxDenominator))
	assert.InDelta(3.14159265358979, r.Float64(), 1e-9)
}

func TestCommonizeUsesLeastCommonMultiple(t *testing.T) {
	a, b := Commonize(New(1, 4), New(1, 6))

	assert := assert.New(t)
	assert.Equal(Fraction{3, 12}, a)
	assert.Equal(Fraction{2, 12}, b)
}

func TestCommonizeRepeatedCoversSet(t *testing.T) {
	offsets := []Fraction{New(0, 1), New(1, 3), New(2, 4), New(3, 8)}
	common := One
	for pass := 0; pass < 2; pass++ {
		for i := range offsets {
			offsets[i], common = Commonize(offsets[i], common)
		}
	}

	assert := assert.New(t)
	assert.Equal(int64(24), common.Denominator)
	for _, o := range offsets {
		assert.Equal(int64(24), o.Denominator)
	}
	assert.Equal(int64(8), offsets[1].Numerator)
	assert.Equal(int64(12), offsets[2].Numerator)
	assert.Equal(int64(9), offsets[3].Numerator)
}

func TestEqualIgnoresRepresentation(t *testing.T) {
	assert := assert.New(t)
	assert.True(New(2, 4).Equal(New(1, 2)))
	assert.False(New(1, 3).Equal(New(1, 2)))
	assert.True(New(1, -2).Equal(New(-1, 2)))
}

func TestReducedAndQuotient(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Fraction{3, 4}, New(6, 8).Reduced())
	assert.Equal(int64(72), New(291, 4).Int())
	assert.Equal("291/4", New(291, 4).String())
	assert.True(New(1, 3).Less(New(1, 2)))
}
