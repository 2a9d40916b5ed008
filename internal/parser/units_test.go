package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitUnitSuffix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input      string
		wantNumber string
		wantUnit   string
	}{
		{"300", "300", ""},
		{"300K", "300", "K"},
		{"0.5nm", "0.5", "nm"},
		{"-1.5deg", "-1.5", "deg"},
		{"1e6", "1e6", ""},
		{"1e-3Aa", "1e-3", "Aa"},
		{"abc", "", "abc"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			number, unit := splitUnitSuffix(tt.input)
			assert.Equal(t, tt.wantNumber, number)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestUnitFloatParser(t *testing.T) {
	t.Parallel()
	table := &UnitTable{
		Canonical: "K",
		Convert: map[string]func(float64) float64{
			"K": func(v float64) float64 { return v },
			"C": func(v float64) float64 { return v + 273.15 },
		},
	}
	p := NewUnitFloatParser(table)

	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"bare number is canonical", "300", 300, false},
		{"canonical suffix", "300K", 300, false},
		{"converted suffix", "0C", 273.15, false},
		{"negative with suffix", "-10C", 263.15, false},
		{"scientific notation", "1e3", 1000, false},
		{"scientific notation with suffix", "1e3K", 1000, false},
		{"whitespace trimmed", " 300K ", 300, false},
		{"infinity rejected by default", "inf", 0, true},
		{"negative infinity rejected by default", "-inf", 0, true},
		{"unknown unit", "300R", 0, true},
		{"unit only", "K", 0, true},
		{"not a number", "hot", 0, true},
		{"nan", "nan", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := p.ParseAndValidate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-12)
		})
	}

	t.Run("unknown unit error lists accepted units", func(t *testing.T) {
		t.Parallel()
		_, err := p.ParseAndValidate("300R")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "C, K")
	})
}

func TestUnitFloatParserAllowInfinity(t *testing.T) {
	t.Parallel()
	p := NewUnitFloatParser(nil).AllowInfinity()

	v, err := p.ParseAndValidate("inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = p.ParseAndValidate("+inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = p.ParseAndValidate("-inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	_, err = p.ParseAndValidate("nan")
	assert.Error(t, err, "NaN stays rejected")
	_, err = p.ParseAndValidate("infK")
	assert.Error(t, err, "the literal takes no unit suffix")
}

func TestUnitFloatParserNilTable(t *testing.T) {
	t.Parallel()
	p := NewUnitFloatParser(nil)

	v, err := p.ParseAndValidate("0.5")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	_, err = p.ParseAndValidate("0.5deg")
	assert.Error(t, err, "suffixes are rejected for pure numbers")
}
