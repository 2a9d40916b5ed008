package cfgvar

import (
	"fmt"
	"strings"

	"github.com/nsimtools/matcfg/internal/parser"
)

// Orientation descriptor syntax:
//
//	@crys:c1,c2,c3@lab:l1,l2,l3
//	@crys_hkl:c1,c2,c3@lab:l1,l2,l3
//
// The crystal-frame entry must come first. Both vectors must be finite and
// non-null.

var orientVectorParser = parser.NewVector3Parser()

func parseOrientDir(raw string) (OrientDir, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "@") {
		return OrientDir{}, fmt.Errorf(`must be of the form "@crys:c1,c2,c3@lab:l1,l2,l3" (or "@crys_hkl:...")`)
	}

	var entries []string
	for e := range strings.SplitSeq(s[1:], "@") {
		entries = append(entries, strings.TrimSpace(e))
	}
	if len(entries) != 2 {
		return OrientDir{}, fmt.Errorf("expected exactly one crystal-frame and one lab-frame entry")
	}

	var d OrientDir
	crysEntry, labEntry := entries[0], entries[1]

	var crysCoords string
	switch {
	case strings.HasPrefix(crysEntry, "crys_hkl:"):
		d.CrysHKL = true
		crysCoords = strings.TrimPrefix(crysEntry, "crys_hkl:")
	case strings.HasPrefix(crysEntry, "crys:"):
		crysCoords = strings.TrimPrefix(crysEntry, "crys:")
	default:
		return OrientDir{}, fmt.Errorf(`first entry must start with "crys:" or "crys_hkl:"`)
	}

	labCoords, ok := strings.CutPrefix(labEntry, "lab:")
	if !ok {
		return OrientDir{}, fmt.Errorf(`second entry must start with "lab:"`)
	}

	var err error
	if d.Crys, err = parseOrientVector("crystal frame", crysCoords); err != nil {
		return OrientDir{}, err
	}
	if d.Lab, err = parseOrientVector("lab frame", labCoords); err != nil {
		return OrientDir{}, err
	}
	return d, nil
}

func parseOrientVector(frame, coords string) (Vector, error) {
	raw, err := orientVectorParser.Parse(coords)
	if err != nil {
		return Vector{}, fmt.Errorf("bad %s direction: %w", frame, err)
	}
	v := Vector(raw)
	if !(v.Mag2() > 0.0) {
		return Vector{}, fmt.Errorf("null vector provided for %s direction", frame)
	}
	return v, nil
}
