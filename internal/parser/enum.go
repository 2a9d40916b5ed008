package parser

import (
	"fmt"
	"sort"
	"strings"
)

// EnumParser parses string values into enum types.
// It supports case-insensitive matching and custom value mappings.
type EnumParser[T comparable] struct {
	BaseParser[T]
	originalValues map[string]T // original values, for case-sensitive mode
	values         map[string]T
	caseMatters    bool
}

// NewEnumParser creates a new enum parser with the given valid values.
// By default, it performs case-insensitive matching.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	normalizedValues := make(map[string]T)
	for k, v := range values {
		normalizedValues[strings.ToUpper(k)] = v
	}

	parser := &EnumParser[T]{
		originalValues: values,
		values:         normalizedValues,
		caseMatters:    false,
	}

	parser.BaseParser = BaseParser[T]{
		ParseFunc: parser.parseEnum,
	}

	return parser
}

// CaseSensitive makes the enum parser case-sensitive.
func (p *EnumParser[T]) CaseSensitive() *EnumParser[T] {
	if !p.caseMatters {
		p.values = p.originalValues
		p.caseMatters = true
	}
	return p
}

func (p *EnumParser[T]) parseEnum(value string) (T, error) {
	trimmed := strings.TrimSpace(value)

	lookupKey := trimmed
	if !p.caseMatters {
		lookupKey = strings.ToUpper(lookupKey)
	}

	if result, ok := p.values[lookupKey]; ok {
		return result, nil
	}

	validValues := make([]string, 0, len(p.values))
	for k := range p.values {
		validValues = append(validValues, k)
	}
	sort.Strings(validValues)

	var zero T
	return zero, fmt.Errorf("invalid value %q, must be one of: %s", value, strings.Join(validValues, ", "))
}
