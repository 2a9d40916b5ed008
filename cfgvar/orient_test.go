package cfgvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientVars(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    OrientDir
		wantErr bool
	}{
		{
			"direct space",
			"@crys:0,0,1@lab:0,0,1",
			OrientDir{Crys: Vector{0, 0, 1}, Lab: Vector{0, 0, 1}},
			false,
		},
		{
			"hkl space",
			"@crys_hkl:0,0,1@lab:0,0,1",
			OrientDir{CrysHKL: true, Crys: Vector{0, 0, 1}, Lab: Vector{0, 0, 1}},
			false,
		},
		{
			"negative and fractional components",
			"@crys_hkl:1,-1,0.5@lab:0,1,0",
			OrientDir{CrysHKL: true, Crys: Vector{1, -1, 0.5}, Lab: Vector{0, 1, 0}},
			false,
		},
		{
			"whitespace tolerated",
			"  @crys: 0 , 0 , 1 @ lab: 1,0,0 ",
			OrientDir{Crys: Vector{0, 0, 1}, Lab: Vector{1, 0, 0}},
			false,
		},
		{"missing at prefix", "crys:0,0,1@lab:0,0,1", OrientDir{}, true},
		{"lab entry first", "@lab:0,0,1@crys:0,0,1", OrientDir{}, true},
		{"missing lab entry", "@crys:0,0,1", OrientDir{}, true},
		{"three entries", "@crys:0,0,1@lab:0,0,1@lab:1,0,0", OrientDir{}, true},
		{"unknown frame", "@kryst:0,0,1@lab:0,0,1", OrientDir{}, true},
		{"null crystal vector", "@crys:0,0,0@lab:0,0,1", OrientDir{}, true},
		{"null lab vector", "@crys:0,0,1@lab:0,0,0", OrientDir{}, true},
		{"two components", "@crys:0,1@lab:0,0,1", OrientDir{}, true},
		{"non numeric component", "@crys:0,0,x@lab:0,0,1", OrientDir{}, true},
		{"empty", "", OrientDir{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(VarDir1, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Orientation())

			// canonical form reparses to the same descriptor
			again, err := Parse(VarDir1, v.String())
			require.NoError(t, err)
			assert.Equal(t, v, again)
		})
	}
}

func TestOrientDirString(t *testing.T) {
	t.Parallel()
	d := OrientDir{CrysHKL: true, Crys: Vector{0, 0, 1}, Lab: Vector{1, 0, 0}}
	assert.Equal(t, "@crys_hkl:0,0,1@lab:1,0,0", d.String())
	d.CrysHKL = false
	assert.Equal(t, "@crys:0,0,1@lab:1,0,0", d.String())
}
