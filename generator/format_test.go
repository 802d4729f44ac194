package generator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$ 150.000", FormatCurrency(150000))
	assert.Equal(t, "$ 1.250.000", FormatCurrency(1249999.6))
	assert.Equal(t, "$ 0", FormatCurrency(0))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-03-01", "01/03/2024"},
		{"2025-12-31", "31/12/2025"},
		{"", "[FECHA]"},
		{"01/03/2024", "[FECHA]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), "FormatDate(%q)", tt.in)
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "enero", MonthName(time.January))
	assert.Equal(t, "septiembre", MonthName(time.September))
	assert.Equal(t, "", MonthName(time.Month(13)))
}

func TestMonthsBetween(t *testing.T) {
	months, ok := monthsBetween("2024-03-01", "2026-03-01")
	assert.True(t, ok)
	assert.Equal(t, int64(24), months)

	_, ok = monthsBetween("", "2026-03-01")
	assert.False(t, ok)
}

func TestFormatCurrencyOutOfRange(t *testing.T) {
	assert.Equal(t, "$ [MONTO]", FormatCurrency(1e20))
	assert.Equal(t, "$ [MONTO]", FormatCurrency(math.NaN()))
	assert.Equal(t, "$ 999.999.999.999", FormatCurrency(MaxAmount))
}

func TestSpellAmount(t *testing.T) {
	assert.Equal(t, "CIENTO CINCUENTA MIL", SpellAmount(149999.7))
	assert.Equal(t, PlaceholderAmount, SpellAmount(1e20))
	assert.Equal(t, PlaceholderAmount, SpellAmount(math.Inf(1)))
}
