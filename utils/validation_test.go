package utils

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	d, err := ValidateAmount(" 1500.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1500.5")))

	_, err = ValidateAmount("")
	assert.Error(t, err)

	_, err = ValidateAmount("-1")
	assert.Error(t, err)

	_, err = ValidateAmount("12,50")
	assert.Error(t, err)
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(decimal.RequireFromString("0.5")))
	assert.Error(t, ValidateQuantity(decimal.Zero))
	assert.Error(t, ValidateQuantity(decimal.NewFromInt(-2)))
}

func TestValidateAmountRejectsHugeExponent(t *testing.T) {
	_, err := ValidateAmount("1e900000000")
	assert.Error(t, err)

	_, err = ValidateAmount("1e-900000000")
	assert.Error(t, err)

	_, err = ValidateAmount("1e10")
	assert.NoError(t, err)
}

func TestValidateQuantityRejectsHugeExponent(t *testing.T) {
	assert.Error(t, ValidateQuantity(decimal.RequireFromString("1e900000000")))
	assert.NoError(t, ValidateQuantity(decimal.RequireFromString("1.5e3")))
}

func TestMinorToMajor(t *testing.T) {
	assert.Equal(t, "1500", MinorToMajor(150000).String())
	assert.Equal(t, "0.99", MinorToMajor(99).String())
	assert.Equal(t, "-0.01", MinorToMajor(-1).String())
}

func TestLineAmount(t *testing.T) {
	cases := []struct {
		price    int64
		quantity string
		want     int64
	}{
		{10000, "3", 30000},
		{10000, "0.5", 5000},
		{10000, "0.3333", 3333},
		{math.MaxInt64, "1", math.MaxInt64},
	}

	for _, tc := range cases {
		got, err := LineAmount(tc.price, decimal.RequireFromString(tc.quantity))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestLineAmountOutOfRange(t *testing.T) {
	_, err := LineAmount(math.MaxInt64, decimal.NewFromInt(2))
	assert.Error(t, err)

	_, err = LineAmount(math.MinInt64, decimal.NewFromInt(2))
	assert.Error(t, err)

	_, err = LineAmount(math.MaxInt64, decimal.RequireFromString("1.0000001"))
	assert.Error(t, err)
}
