package cfgvar

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
)

// VarId is the stable symbolic identifier of one configuration variable: its
// position in the registry. Identifiers are only meaningful relative to one
// build of the registry and must never be persisted externally.
type VarId int

// The VarId constants are declared in ascending name order, matching the
// registry exactly: varlist below is an array literal indexed by these
// constants, so the symbolic identifier and the name-resolution path cannot
// drift apart. checkRegistry (run at init) guards the ordering.
const (
	VarAbsnFactory VarId = iota
	VarAtomDB
	VarCohElas
	VarDCutoff
	VarDCutoffUp
	VarDir1
	VarDir2
	VarDirTol
	VarIncohElas
	VarInelas
	VarInfoFactory
	VarLCAxis
	VarLCMode
	VarMos
	VarMosPrec
	VarSans
	VarScatFactory
	VarSCCutoff
	VarTemp
	VarVDOSLux

	numVars
)

// varlist is the registry: the complete, immutable, name-sorted table of
// variable descriptors. It is populated once at package initialization and
// never mutated afterwards, so concurrent readers need no locking.
var varlist = [numVars]Info{
	VarAbsnFactory: factoryVar("absnfactory", GroupAbsorption, "Absorption"),
	VarAtomDB: {
		Name: "atomdb", Group: GroupInfo, Kind: KindString,
		Description: "Modify atomic definitions if supported (in practice this is unlikely" +
			" to be supported by anything except NCMAT data). The string must follow a syntax" +
			" identical to that used in @ATOMDB sections of NCMAT files, with two exceptions:" +
			" ':' characters are interpreted as whitespace, and '@' characters play the role" +
			" of line separators. An initial line with the single word \"nodefaults\" discards" +
			" the built-in database of elements and isotopes.",
		def:   defaultOf(StringValue("")),
		parse: parseAtomDBVar,
	},
	VarCohElas: boolVar("coh_elas", GroupScatterBase,
		"If enabled, coherent elastic components will be included for solid materials."+
			" In the case of crystalline materials this is essentially Bragg diffraction.",
		true),
	VarDCutoff: numberVar("dcutoff", GroupInfo, UnitLength,
		"Crystal planes with d-spacing below this value will be ignored. The special"+
			" value of 0 implies an automatic selection of this threshold. Note that for"+
			" backwards compatibility -1 is treated as 0 (for now).",
		defaultOf(NumberValue(0.0)), dcutoffParser),
	VarDCutoffUp: numberVar("dcutoffup", GroupInfo, UnitLength,
		"Crystal planes with d-spacing above this value will be ignored.",
		defaultOf(NumberValue(math.Inf(1))), dcutoffUpParser),
	VarDir1: orientVar("dir1", GroupScatterExtra,
		"Primary orientation axis of a single crystal. The direction of the axis is"+
			" given in both the crystal and lab frames using the format"+
			" \"@crys:c1,c2,c3@lab:l1,l2,l3\". The direction in the crystal frame can"+
			" alternatively be provided in HKL space (indicating the normal of a given HKL"+
			" plane) by using \"@crys_hkl:\" instead of \"@crys:\". When this parameter is"+
			" set, the parameters mos and dir2 must also be provided."),
	VarDir2: orientVar("dir2", GroupScatterExtra,
		"Secondary orientation axis of a single crystal, specified using the same"+
			" syntax as for the dir1 parameter. The opening angle between the dir1 and"+
			" dir2 vectors must be nonzero and identical in the crystal and lab frames,"+
			" but a discrepancy up to the value of the dirtol parameter is allowed. When"+
			" this parameter is set, the parameters mos and dir1 must also be provided."),
	VarDirTol: numberVar("dirtol", GroupScatterExtra, UnitAngle,
		"Tolerance parameter for the secondary direction of the single crystal"+
			" orientation (see the dir2 parameter description). A value of 180deg can be"+
			" used to easily set up a single crystal monochromator where one is only"+
			" interested in the primary direction.",
		defaultOf(NumberValue(1e-4)), dirtolParser),
	VarIncohElas: boolVar("incoh_elas", GroupScatterBase,
		"If enabled, incoherent elastic scattering components will be included for solid materials.",
		true),
	VarInelas: {
		Name: "inelas", Group: GroupScatterBase, Kind: KindString,
		Description: "Influence choice of inelastic scattering models. The default value of" +
			" \"auto\" leaves the choice to the code, and the values \"none\", \"0\"," +
			" \"sterile\", and \"false\" all disable inelastic scattering. The standard" +
			" scatter plugin additionally supports \"external\", \"dyninfo\", \"vdosdebye\"," +
			" and \"freegas\"; in \"auto\" mode the first possible of those is selected in" +
			" the listed order (falling back to \"none\" when nothing is possible).",
		def:   defaultOf(StringValue("auto")),
		parse: parseInelas,
	},
	VarInfoFactory: factoryVar("infofactory", GroupInfo, "material Info"),
	VarLCAxis: vectorVar("lcaxis", GroupScatterExtra,
		"Symmetry axis of anisotropic layered crystals with a layout similar to"+
			" pyrolytic graphite (PG). The axis must be provided in direct lattice"+
			" coordinates using a format like \"0,0,1\". Specifying this parameter along"+
			" with an orientation (see dir1 and dir2) selects the appropriate anisotropic"+
			" single crystal scatter model for Bragg diffraction."),
	VarLCMode: intVar("lcmode", GroupScatterExtra,
		"Choose which modelling is used for layered crystals like PG (ignored unless"+
			" the lcaxis, dir1, and dir2 parameters are set). The default value 0 enables"+
			" the recommended model. A positive value N triggers a very slow but simple"+
			" reference model in which N crystallite orientations are sampled internally."+
			" A negative value -N triggers a different (and multi-thread unsafe!) model in"+
			" which each cross-section call triggers a new selection of N randomly"+
			" oriented crystallites.",
		0, -4000000000, 4000000000),
	VarMos: numberVar("mos", GroupScatterExtra, UnitAngle,
		"Mosaic FWHM spread in mosaic single crystals. When this parameter is set,"+
			" the parameters dir1 and dir2 must also be provided.",
		nil, mosParser),
	VarMosPrec: numberVar("mosprec", GroupScatterExtra, UnitNone,
		"Approximate relative numerical precision in the implementation of the mosaic"+
			" model in single crystals.",
		defaultOf(NumberValue(1e-3)), mosprecParser),
	VarSans: boolVar("sans", GroupScatterBase,
		"Control presence of SANS models. Note that this parameter is primarily added"+
			" to support future developments.",
		true),
	VarScatFactory: factoryVar("scatfactory", GroupScatterBase, "Scatter"),
	VarSCCutoff: numberVar("sccutoff", GroupScatterExtra, UnitLength,
		"Single-crystal modelling cutoff. Crystal planes with d-spacing below this"+
			" value will be approximated as having infinite mosaicity (as in a powder)."+
			" A value of 0 naturally disables this approximation entirely.",
		defaultOf(NumberValue(0.4)), sccutoffParser),
	VarTemp: numberVar("temp", GroupInfo, UnitTemperature,
		"Temperature of material in Kelvin. The special value of -1.0 implies 293.15K"+
			" unless input data is only valid at a specific temperature, in which case"+
			" that temperature is used instead.",
		defaultOf(NumberValue(-1.0)), tempParser),
	VarVDOSLux: intVar("vdoslux", GroupScatterBase,
		"Setting affecting the \"luxury\" level when expanding phonon spectra (VDOS)"+
			" into scattering kernels. This primarily impacts the granularity of the"+
			" kernel and the upper neutron energy beyond which free-gas extrapolation is"+
			" used, with implications for memory usage and initialisation time. Allowed"+
			" values range from 0 (extremely crude) to 5 (overkill); the default of 3 is"+
			" good for most purposes.",
		3, 0, 5),
}

// Name returns the variable's string name.
func (id VarId) Name() string {
	return varlist[id].Name
}

// Group returns the variable's group.
func (id VarId) Group() Group {
	return varlist[id].Group
}

// Info returns the variable's descriptor.
func (id VarId) Info() *Info {
	return &varlist[id]
}

// String implements fmt.Stringer.
func (id VarId) String() string {
	if id < 0 || id >= numVars {
		return fmt.Sprintf("VarId(%d)", int(id))
	}
	return id.Name()
}

// FromName resolves a variable name to its identifier. Matching is exact and
// case-sensitive with no trimming. The registry is name-sorted, so resolution
// is a binary search.
func FromName(name string) (VarId, bool) {
	idx, ok := slices.BinarySearchFunc(varlist[:], name, func(in Info, target string) int {
		return strings.Compare(in.Name, target)
	})
	if !ok {
		return 0, false
	}
	return VarId(idx), true
}

// All returns the identifiers of every registered variable, in registry
// (ascending name) order.
func All() []VarId {
	ids := make([]VarId, numVars)
	for i := range ids {
		ids[i] = VarId(i)
	}
	return ids
}

// NumVars returns the number of registered variables.
func NumVars() int {
	return int(numVars)
}

// Parse parses and validates a raw value string for the given variable.
// It is shorthand for id.Info().Parse(raw).
func Parse(id VarId, raw string) (Value, error) {
	return varlist[id].Parse(raw)
}

// Default returns the variable's default value, if it has one.
func Default(id VarId) (Value, bool) {
	return varlist[id].Default()
}

var varNameRe = regexp.MustCompile(`^[a-z0-9_]+$`)

// checkRegistry enforces the registry invariants: every name is a nonempty
// lowercase token, entries are strictly ascending by name (no duplicates),
// and every descriptor has a parse function. A violation is a defect in this
// package, caught the first time it is loaded.
func checkRegistry() {
	for i := range varlist {
		in := &varlist[i]
		if !varNameRe.MatchString(in.Name) {
			panic(fmt.Sprintf("cfgvar: bad variable name %q at index %d", in.Name, i))
		}
		if in.parse == nil {
			panic(fmt.Sprintf("cfgvar: variable %q has no parse function", in.Name))
		}
		if i > 0 && varlist[i-1].Name >= in.Name {
			panic(fmt.Sprintf("cfgvar: registry not strictly sorted at %q >= %q",
				varlist[i-1].Name, in.Name))
		}
	}
}

func init() {
	checkRegistry()
}
