package cfgvar

import (
	"math"

	"github.com/nsimtools/matcfg/internal/parser"
)

// Unit tables for KindNumber variables. A bare number is always interpreted
// as already being in the canonical unit (Kelvin, angstrom, radian).

var temperatureUnits = &parser.UnitTable{
	Canonical: "K",
	Convert: map[string]func(float64) float64{
		"K": func(v float64) float64 { return v },
		"C": func(v float64) float64 { return v + 273.15 },
		"F": func(v float64) float64 { return (v-32.0)*5.0/9.0 + 273.15 },
	},
}

var lengthUnits = &parser.UnitTable{
	Canonical: "Aa",
	Convert: map[string]func(float64) float64{
		"Aa": func(v float64) float64 { return v },
		"nm": func(v float64) float64 { return v * 10.0 },
		"um": func(v float64) float64 { return v * 1e4 },
		"mm": func(v float64) float64 { return v * 1e7 },
		"cm": func(v float64) float64 { return v * 1e8 },
		"m":  func(v float64) float64 { return v * 1e10 },
	},
}

var angleUnits = &parser.UnitTable{
	Canonical: "rad",
	Convert: map[string]func(float64) float64{
		"rad":    func(v float64) float64 { return v },
		"deg":    func(v float64) float64 { return v * (math.Pi / 180.0) },
		"arcmin": func(v float64) float64 { return v * (math.Pi / 10800.0) },
		"arcsec": func(v float64) float64 { return v * (math.Pi / 648000.0) },
	},
}
