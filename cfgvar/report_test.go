package cfgvar

import (
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    ListMode
		wantErr bool
	}{
		{"short", ListShort, false},
		{"full", ListFull, false},
		{"json", ListJSON, false},
		{"yaml", ListYAML, false},
		{"JSON", ListJSON, false},
		{" short ", ListShort, false},
		{"xml", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseListMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("error lists valid modes", func(t *testing.T) {
		t.Parallel()
		_, err := ParseListMode("xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "FULL, JSON, SHORT, YAML")
	})
}

func TestDumpVarListShort(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	require.NoError(t, DumpVarList(&sb, ListShort, ""))
	out := sb.String()

	for _, id := range All() {
		assert.Contains(t, out, id.Name())
	}
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "DEFAULT")
	assert.Contains(t, out, "number(temperature)")
	assert.Contains(t, out, "<required>", "variables without defaults are marked")
	assert.Contains(t, out, `""`, "empty-string defaults are quoted")
}

func TestDumpVarListFull(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	require.NoError(t, DumpVarList(&sb, ListFull, ""))
	out := sb.String()

	assert.Contains(t, out, "temp [number(temperature), info]")
	assert.Contains(t, out, `default: "-1"`)
	assert.Contains(t, out, "no default value (required when used)")
	assert.Contains(t, out, "Temperature of material in Kelvin.")

	for line := range strings.SplitSeq(out, "\n") {
		assert.LessOrEqual(t, len(line), 80, "line too long: %q", line)
	}
}

func TestDumpVarListJSON(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	require.NoError(t, DumpVarList(&sb, ListJSON, ""))

	var docs []varDoc
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &docs))
	require.Len(t, docs, NumVars())

	assert.Equal(t, "absnfactory", docs[0].Name)
	assert.Equal(t, "absorption", docs[0].Group)

	byName := map[string]varDoc{}
	for _, d := range docs {
		byName[d.Name] = d
	}
	temp := byName["temp"]
	assert.Equal(t, "number(temperature)", temp.Type)
	require.NotNil(t, temp.Default)
	assert.Equal(t, "-1", *temp.Default)
	assert.Nil(t, byName["mos"].Default)
}

func TestDumpVarListYAML(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	require.NoError(t, DumpVarList(&sb, ListYAML, ""))

	var docs []varDoc
	require.NoError(t, yaml.Unmarshal([]byte(sb.String()), &docs))
	require.Len(t, docs, NumVars())
	assert.Equal(t, "absnfactory", docs[0].Name)
}

func TestDumpVarListLinePrefix(t *testing.T) {
	t.Parallel()
	for _, mode := range []ListMode{ListShort, ListFull, ListJSON, ListYAML} {
		var sb strings.Builder
		require.NoError(t, DumpVarList(&sb, mode, "# "))
		out := sb.String()
		require.NotEmpty(t, out)
		assert.True(t, strings.HasSuffix(out, "\n"))
		for line := range strings.SplitSeq(strings.TrimRight(out, "\n"), "\n") {
			assert.True(t, strings.HasPrefix(line, "# "), "line missing prefix: %q", line)
		}
	}
}

func TestWrapText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"single word", "hello", 10, []string{"hello"}},
		{"fits on one line", "a b c", 10, []string{"a b c"}},
		{"wraps", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"word longer than width", "aaaaaaaaaa b", 4, []string{"aaaaaaaaaa", "b"}},
		{"collapses whitespace", "a\n  b\t c", 10, []string{"a b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapText(tt.input, tt.width))
		})
	}
}
