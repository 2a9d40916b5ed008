package cfgvar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nsimtools/matcfg/factreq"
	"github.com/nsimtools/matcfg/internal/parser"
)

// Group classifies a variable for documentation and reporting purposes.
// Groups have no behavioral effect on parsing or validation.
type Group int

const (
	// GroupInfo collects general material-info parameters.
	GroupInfo Group = iota
	// GroupScatterBase collects base scattering parameters.
	GroupScatterBase
	// GroupScatterExtra collects extra scattering parameters (single
	// crystal orientation, layered crystals, ...).
	GroupScatterExtra
	// GroupAbsorption collects absorption parameters.
	GroupAbsorption
)

func (g Group) String() string {
	switch g {
	case GroupInfo:
		return "info"
	case GroupScatterBase:
		return "scatter-base"
	case GroupScatterExtra:
		return "scatter-extra"
	case GroupAbsorption:
		return "absorption"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// Info is the immutable descriptor of one configuration variable: its name,
// group, value kind, default (if any), and parse+validate function.
type Info struct {
	Name        string
	Group       Group
	Kind        Kind
	Unit        Unit
	Description string

	def   *Value
	parse func(raw string) (Value, error)
}

// Parse parses and validates a raw value string, returning the canonical
// validated Value. All failures are *BadInputError naming the variable and
// the offending raw string. Parse is a pure function and safe for concurrent
// use.
func (in *Info) Parse(raw string) (Value, error) {
	v, err := in.parse(raw)
	if err != nil {
		var bad *BadInputError
		if errors.As(err, &bad) {
			return Value{}, err
		}
		return Value{}, &BadInputError{Var: in.Name, Raw: raw, msg: err.Error()}
	}
	return v, nil
}

// HasDefault reports whether the variable has a default value. Variables
// without one are required-if-used.
func (in *Info) HasDefault() bool {
	return in.def != nil
}

// Default returns the variable's default value, if it has one.
func (in *Info) Default() (Value, bool) {
	if in.def == nil {
		return Value{}, false
	}
	return *in.def, true
}

// TypeLabel renders the value kind for reporting, e.g. "number(length)".
func (in *Info) TypeLabel() string {
	if in.Kind == KindNumber && in.Unit != UnitNone {
		return fmt.Sprintf("%s(%s)", in.Kind, in.Unit)
	}
	return in.Kind.String()
}

func defaultOf(v Value) *Value {
	return &v
}

// ----------------------------------------------------------------------------
// Descriptor builders, one per value kind.
// ----------------------------------------------------------------------------

// numberVar builds a numeric descriptor around a parser that already carries
// the variable's unit conversion, validation and normalization. Values reach
// the validators converted to the canonical unit.
func numberVar(name string, group Group, unit Unit, descr string, def *Value, p parser.Parser[float64]) Info {
	return Info{
		Name: name, Group: group, Kind: KindNumber, Unit: unit,
		Description: descr, def: def,
		parse: func(raw string) (Value, error) {
			v, err := p.ParseAndValidate(raw)
			if err != nil {
				return Value{}, err
			}
			return NumberValue(v), nil
		},
	}
}

func intVar(name string, group Group, descr string, def int64, min, max int64) Info {
	p := parser.NewIntParser().WithRange(min, max)
	return Info{
		Name: name, Group: group, Kind: KindInt,
		Description: descr, def: defaultOf(IntValue(def)),
		parse: func(raw string) (Value, error) {
			v, err := p.ParseAndValidate(raw)
			if err != nil {
				return Value{}, err
			}
			return IntValue(v), nil
		},
	}
}

func boolVar(name string, group Group, descr string, def bool) Info {
	p := parser.NewBoolParser()
	return Info{
		Name: name, Group: group, Kind: KindBool,
		Description: descr, def: defaultOf(BoolValue(def)),
		parse: func(raw string) (Value, error) {
			v, err := p.ParseAndValidate(raw)
			if err != nil {
				return Value{}, err
			}
			return BoolValue(v), nil
		},
	}
}

func vectorVar(name string, group Group, descr string) Info {
	p := parser.NewVector3Parser()
	return Info{
		Name: name, Group: group, Kind: KindVector,
		Description: descr, // no default: required-if-used
		parse: func(raw string) (Value, error) {
			raw3, err := p.Parse(raw)
			if err != nil {
				return Value{}, err
			}
			v := Vector(raw3)
			m2 := v.Mag2()
			if !(m2 > 0.0) {
				return Value{}, fmt.Errorf("null vector")
			}
			if math.IsInf(m2, 0) {
				return Value{}, fmt.Errorf("too large values in vector")
			}
			return VectorValue(v), nil
		},
	}
}

func orientVar(name string, group Group, descr string) Info {
	return Info{
		Name: name, Group: group, Kind: KindOrientation,
		Description: descr, // no default: required-if-used
		parse: func(raw string) (Value, error) {
			d, err := parseOrientDir(raw)
			if err != nil {
				return Value{}, err
			}
			return OrientationValue(d), nil
		},
	}
}

// factoryVar builds a factory-selection descriptor. Syntax and semantics are
// delegated to the factreq grammar; the canonical form is the request
// re-serialized.
func factoryVar(name string, group Group, objKind string) Info {
	return Info{
		Name: name, Group: group, Kind: KindString,
		Description: fmt.Sprintf(factorySelectDescr, objKind),
		def:         defaultOf(StringValue("")),
		parse: func(raw string) (Value, error) {
			req, err := factreq.Parse(raw)
			if err != nil {
				return Value{}, fmt.Errorf("syntax error in factory request: %w", err)
			}
			return StringValue(req.String()), nil
		},
	}
}

// factorySelectDescr is the description template shared by the three
// factory-selection variables.
const factorySelectDescr = "Bypass the usual factory selection logic for %s objects." +
	" A factory can be selected by providing its name, or excluded by prefixing" +
	" the name with \"!\". Multiple entries must be separated by an \"@\" sign" +
	" (at most one non-excluded entry can appear)."

// ----------------------------------------------------------------------------
// Per-variable parsers, validators and special parse functions.
// ----------------------------------------------------------------------------

var (
	validateMos         = parser.CreateOpenRangeValidator(parser.Ptr(0.0), parser.Ptr(math.Pi/2))
	validateDirTol      = parser.CreateOpenRangeValidator(parser.Ptr(0.0), parser.Ptr(math.Pi))
	validateMosPrec     = parser.CreateRangeValidator(parser.Ptr(1e-7), parser.Ptr(1e-1))
	validateNonNegative = parser.CreateRangeValidator(parser.Ptr(0.0), nil)
)

var (
	tempParser = parser.WithValidation[float64](
		parser.NewUnitFloatParser(temperatureUnits), validateTemp)
	dcutoffParser = parser.WithNormalization[float64](
		parser.NewUnitFloatParser(lengthUnits), normalizeDCutoff)
	// the upper cutoff is the one length whose default is infinite, so its
	// canonical form "inf" must reparse
	dcutoffUpParser = parser.WithValidation[float64](
		parser.NewUnitFloatParser(lengthUnits).AllowInfinity(), validateNonNegative)
	sccutoffParser = parser.WithValidation[float64](
		parser.NewUnitFloatParser(lengthUnits), validateNonNegative)
	mosParser = parser.WithValidation[float64](
		parser.NewUnitFloatParser(angleUnits), validateMos)
	dirtolParser = parser.WithValidation[float64](
		parser.NewUnitFloatParser(angleUnits), validateDirTol)
	mosprecParser = parser.WithValidation[float64](
		parser.NewFloatParser(), validateMosPrec)
)

func validateTemp(v float64) error {
	if v == -1.0 {
		// sentinel: use the data default temperature
		return nil
	}
	if v < 0.001 || v > 1e6 {
		return fmt.Errorf("out of range temperature %sK (valid temperatures must be in the range 0.001K .. 1000000K)", formatNumber(v))
	}
	return nil
}

func normalizeDCutoff(v float64) (float64, error) {
	if v == -1.0 || v == 0.0 {
		// back-compat: dcutoff=-1 maps to 0 (automatic selection)
		return 0.0, nil
	}
	if !(v > 0.0) {
		return 0, fmt.Errorf("must be >=0.0")
	}
	if v < 1e-3 || v > 1e5 {
		return 0, fmt.Errorf("must be 0 (for automatic selection), or in range [1e-3,1e5] (Aa)")
	}
	return v, nil
}

// inelasAliases are the legacy spellings of "inelastic scattering disabled".
// They all normalize to the canonical token "0".
var inelasAliases = map[string]bool{"none": true, "0": true, "sterile": true, "false": true}

var inelasParser = parser.WithNormalization[string](parser.NewStringParser(), normalizeInelas)

func normalizeInelas(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || !isLowerToken(s) {
		return "", fmt.Errorf("must be a nonempty token of lowercase letters, digits and underscores")
	}
	if inelasAliases[s] {
		return "0", nil
	}
	return s, nil
}

func parseInelas(raw string) (Value, error) {
	s, err := inelasParser.ParseAndValidate(raw)
	if err != nil {
		return Value{}, err
	}
	return StringValue(s), nil
}

func isLowerToken(s string) bool {
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

func parseAtomDBVar(raw string) (Value, error) {
	normalized, err := parseAtomDB(raw)
	if err != nil {
		return Value{}, err
	}
	return StringValue(normalized), nil
}
