package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BoolParser parses boolean values.
// It uses strconv.ParseBool which accepts:
// "1", "t", "T", "true", "TRUE", "True",
// "0", "f", "F", "false", "FALSE", "False".
type BoolParser struct {
	BaseParser[bool]
}

// NewBoolParser creates a new boolean parser.
func NewBoolParser() *BoolParser {
	return &BoolParser{
		BaseParser: BaseParser[bool]{
			ParseFunc: func(value string) (bool, error) {
				return strconv.ParseBool(strings.TrimSpace(value))
			},
		},
	}
}

// IntParser parses integer values with optional range validation.
type IntParser struct {
	BaseParser[int64]
	min *int64
	max *int64
}

// NewIntParser creates a new integer parser.
func NewIntParser() *IntParser {
	return &IntParser{
		BaseParser: BaseParser[int64]{
			ParseFunc: func(value string) (int64, error) {
				return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			},
		},
	}
}

// WithRange adds range validation to the integer parser.
func (p *IntParser) WithRange(min, max int64) *IntParser {
	p.min = &min
	p.max = &max
	p.ValidateFunc = p.validateRange
	return p
}

// WithMin adds minimum value validation.
func (p *IntParser) WithMin(min int64) *IntParser {
	p.min = &min
	p.ValidateFunc = p.validateRange
	return p
}

// WithMax adds maximum value validation.
func (p *IntParser) WithMax(max int64) *IntParser {
	p.max = &max
	p.ValidateFunc = p.validateRange
	return p
}

func (p *IntParser) validateRange(value int64) error {
	if p.min != nil && value < *p.min {
		return fmt.Errorf("value %d is less than minimum %d", value, *p.min)
	}
	if p.max != nil && value > *p.max {
		return fmt.Errorf("value %d is greater than maximum %d", value, *p.max)
	}
	return nil
}

// FloatParser parses finite floating point values.
// NaN and infinity literals are rejected: configuration values must be
// ordinary decimal numbers.
type FloatParser struct {
	BaseParser[float64]
}

// NewFloatParser creates a new float parser.
func NewFloatParser() *FloatParser {
	return &FloatParser{
		BaseParser: BaseParser[float64]{
			ParseFunc: parseFiniteFloat,
		},
	}
}

func parseFiniteFloat(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid number: %q", value)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("number must be finite: %q", value)
	}
	return v, nil
}

// StringParser parses string values.
// It returns the value as-is without any processing, so values are
// preserved exactly as supplied.
type StringParser struct {
	BaseParser[string]
}

// NewStringParser creates a new string parser.
func NewStringParser() *StringParser {
	return &StringParser{
		BaseParser: BaseParser[string]{
			ParseFunc: func(value string) (string, error) {
				return value, nil
			},
		},
	}
}

// Vector3Parser parses comma separated 3-vectors like "0,0,1".
// All three components must be present and finite.
type Vector3Parser struct {
	BaseParser[[3]float64]
}

// NewVector3Parser creates a new 3-vector parser.
func NewVector3Parser() *Vector3Parser {
	return &Vector3Parser{
		BaseParser: BaseParser[[3]float64]{
			ParseFunc: parseVector3,
		},
	}
}

func parseVector3(value string) ([3]float64, error) {
	var result [3]float64
	parts := strings.Split(strings.TrimSpace(value), ",")
	if len(parts) != 3 {
		return result, fmt.Errorf("expected three comma separated components, got %d", len(parts))
	}
	for i, part := range parts {
		v, err := parseFiniteFloat(part)
		if err != nil {
			return result, err
		}
		result[i] = v
	}
	return result, nil
}
