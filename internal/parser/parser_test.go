package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseParser(t *testing.T) {
	t.Parallel()

	t.Run("nil parse function", func(t *testing.T) {
		t.Parallel()
		p := &BaseParser[int]{}
		_, err := p.Parse("1")
		assert.Error(t, err)
	})

	t.Run("nil validate function accepts everything", func(t *testing.T) {
		t.Parallel()
		p := NewStringParser()
		assert.NoError(t, p.Validate("anything"))
	})

	t.Run("parse and validate", func(t *testing.T) {
		t.Parallel()
		p := NewIntParser().WithMin(0)
		v, err := p.ParseAndValidate("42")
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)

		_, err = p.ParseAndValidate("-1")
		assert.Error(t, err)
	})
}

func TestChainValidators(t *testing.T) {
	t.Parallel()
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	tests := []struct {
		name       string
		validators []Validator[int]
		wantErr    error
	}{
		{"no validators", nil, nil},
		{"all pass", []Validator[int]{func(int) error { return nil }}, nil},
		{"first fails", []Validator[int]{
			func(int) error { return errFirst },
			func(int) error { return errSecond },
		}, errFirst},
		{"second fails", []Validator[int]{
			func(int) error { return nil },
			func(int) error { return errSecond },
		}, errSecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ChainValidators(tt.validators...)(0)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestWithValidation(t *testing.T) {
	t.Parallel()
	base := NewIntParser().WithMin(0)
	even := func(v int64) error {
		if v%2 != 0 {
			return errors.New("must be even")
		}
		return nil
	}
	p := WithValidation[int64](base, even)

	v, err := p.ParseAndValidate("4")
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	_, err = p.ParseAndValidate("3")
	assert.ErrorContains(t, err, "even")

	_, err = p.ParseAndValidate("-2")
	assert.ErrorContains(t, err, "minimum", "the wrapped parser's own validation runs first")
}

func TestWithNormalization(t *testing.T) {
	t.Parallel()
	p := WithNormalization[string](NewStringParser(), func(s string) (string, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", errors.New("empty")
		}
		return strings.ToLower(s), nil
	})

	v, err := p.ParseAndValidate(" AbC ")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = p.ParseAndValidate("   ")
	assert.Error(t, err)
}

func TestCreateRangeValidator(t *testing.T) {
	t.Parallel()
	v := CreateRangeValidator(Ptr(0.0), Ptr(1.0))
	assert.NoError(t, v(0.0))
	assert.NoError(t, v(1.0))
	assert.Error(t, v(-0.1))
	assert.Error(t, v(1.1))

	unbounded := CreateRangeValidator[float64](nil, nil)
	assert.NoError(t, unbounded(1e300))
	assert.NoError(t, unbounded(-1e300))
}

func TestCreateOpenRangeValidator(t *testing.T) {
	t.Parallel()
	v := CreateOpenRangeValidator(Ptr(0.0), Ptr(1.0))
	assert.Error(t, v(0.0), "lower bound is exclusive")
	assert.NoError(t, v(0.5))
	assert.NoError(t, v(1.0))
	assert.Error(t, v(1.5))
}
