package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	red color = iota
	green
)

func TestEnumParser(t *testing.T) {
	t.Parallel()
	p := NewEnumParser(map[string]color{"red": red, "green": green})

	tests := []struct {
		input   string
		want    color
		wantErr bool
	}{
		{"red", red, false},
		{"RED", red, false},
		{"Green", green, false},
		{" red ", red, false},
		{"blue", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			v, err := p.ParseAndValidate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	t.Run("error lists valid values", func(t *testing.T) {
		t.Parallel()
		_, err := p.ParseAndValidate("blue")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GREEN, RED")
	})
}

func TestEnumParserCaseSensitive(t *testing.T) {
	t.Parallel()
	p := NewEnumParser(map[string]color{"red": red, "green": green}).CaseSensitive()

	v, err := p.ParseAndValidate("red")
	require.NoError(t, err)
	assert.Equal(t, red, v)

	_, err = p.ParseAndValidate("RED")
	assert.Error(t, err)
}
