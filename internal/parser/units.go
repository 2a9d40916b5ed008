package parser

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// UnitTable describes the unit suffixes accepted by a UnitFloatParser and how
// each converts a value to the table's canonical unit. A bare number (no
// suffix) is always interpreted as already being in the canonical unit.
type UnitTable struct {
	// Canonical is the name of the canonical unit, used in error messages.
	Canonical string

	// Convert maps a unit suffix to the conversion applied to the parsed
	// number. The canonical unit itself should map to an identity conversion.
	Convert map[string]func(float64) float64
}

// UnitFloatParser parses a float optionally followed by a unit suffix and
// returns the value converted to the table's canonical unit. A nil table
// means no suffix is accepted (pure number). NaN and infinity literals are
// rejected unless AllowInfinity was called.
type UnitFloatParser struct {
	BaseParser[float64]
	table    *UnitTable
	allowInf bool
}

// NewUnitFloatParser creates a unit-aware float parser for the given table.
func NewUnitFloatParser(table *UnitTable) *UnitFloatParser {
	p := &UnitFloatParser{table: table}
	p.BaseParser = BaseParser[float64]{
		ParseFunc: p.parseWithUnit,
	}
	return p
}

// AllowInfinity makes the parser accept the literals "inf", "+inf" and
// "-inf". Intended for quantities whose canonical default is infinite and
// must survive a format/reparse round trip.
func (p *UnitFloatParser) AllowInfinity() *UnitFloatParser {
	p.allowInf = true
	return p
}

// splitUnitSuffix splits a token into its numeric part and trailing unit
// suffix. The suffix is the longest run of letters at the end of the token
// that is not part of a scientific-notation exponent.
func splitUnitSuffix(token string) (number, unit string) {
	runes := []rune(token)
	i := len(runes)
	for i > 0 && unicode.IsLetter(runes[i-1]) {
		i--
	}
	return string(runes[:i]), string(runes[i:])
}

func (p *UnitFloatParser) parseWithUnit(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if p.allowInf {
		switch trimmed {
		case "inf", "+inf":
			return math.Inf(1), nil
		case "-inf":
			return math.Inf(-1), nil
		}
	}
	number, unit := splitUnitSuffix(trimmed)

	v, err := parseFiniteFloat(number)
	if err != nil {
		return 0, fmt.Errorf("not a valid number: %q", value)
	}

	if unit == "" {
		return v, nil
	}

	if p.table == nil {
		return 0, fmt.Errorf("value %q has unit %q but a pure number is required", value, unit)
	}

	convert, ok := p.table.Convert[unit]
	if !ok {
		known := make([]string, 0, len(p.table.Convert))
		for k := range p.table.Convert {
			known = append(known, k)
		}
		sort.Strings(known)
		return 0, fmt.Errorf("unknown unit %q in value %q (accepted units: %s)",
			unit, value, strings.Join(known, ", "))
	}

	return convert(v), nil
}
