package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "Bs 30.00", FormatCurrency("Bs", decimal.NewFromInt(30)))
	assert.Equal(t, "Bs -6.50", FormatCurrency("Bs", decimal.RequireFromString("-6.5")))
	assert.Equal(t, "1.01", FormatCurrency("", decimal.RequireFromString("1.005")))
}

func TestNormalizeDate(t *testing.T) {
	d, ok := NormalizeDate(" 2025-03-01 ")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-01", d)

	_, ok = NormalizeDate("01/03/2025")
	assert.False(t, ok)

	_, ok = NormalizeDate(Today())
	assert.True(t, ok)
}

func TestSafeFilenamePart(t *testing.T) {
	assert.Equal(t, "NA", SafeFilenamePart(""))
	assert.Equal(t, "a_b_c", SafeFilenamePart("a b/c"))
}
