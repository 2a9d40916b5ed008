package cfgvar

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/nsimtools/matcfg/internal/parser"
)

// ListMode selects the rendering of the variable list.
type ListMode int

const (
	// ListShort renders an ASCII table of names, types, groups and defaults.
	ListShort ListMode = iota
	// ListFull renders the short info plus word-wrapped descriptions.
	ListFull
	// ListJSON renders a structured JSON document.
	ListJSON
	// ListYAML renders the same document as YAML.
	ListYAML
)

var listModeParser = parser.NewEnumParser(map[string]ListMode{
	"short": ListShort,
	"full":  ListFull,
	"json":  ListJSON,
	"yaml":  ListYAML,
})

// ParseListMode parses a list-mode name ("short", "full", "json", "yaml").
// Matching is case-insensitive.
func ParseListMode(s string) (ListMode, error) {
	return listModeParser.ParseAndValidate(s)
}

// descriptionWrapWidth is the wrap width for ListFull descriptions.
const descriptionWrapWidth = 76

// varDoc is the structured form of one descriptor for JSON/YAML output.
type varDoc struct {
	Name        string  `json:"name" yaml:"name"`
	Type        string  `json:"type" yaml:"type"`
	Group       string  `json:"group" yaml:"group"`
	Default     *string `json:"default" yaml:"default"`
	Description string  `json:"description" yaml:"description"`
}

func docOf(id VarId) varDoc {
	in := id.Info()
	var def *string
	if v, ok := in.Default(); ok {
		s := v.String()
		def = &s
	}
	return varDoc{
		Name:        in.Name,
		Type:        in.TypeLabel(),
		Group:       in.Group.String(),
		Default:     def,
		Description: in.Description,
	}
}

// DumpVarList renders the full variable list to w in the given mode. When
// linePrefix is nonempty it is prepended to every output line (useful for
// embedding the dump in comments). Purely derived from the registry; no
// parsing is involved.
func DumpVarList(w io.Writer, mode ListMode, linePrefix string) error {
	var sb strings.Builder
	var err error
	switch mode {
	case ListShort:
		err = writeShortList(&sb)
	case ListFull:
		err = writeFullList(&sb)
	case ListJSON:
		err = json.MarshalWrite(&sb, lo.Map(All(), func(id VarId, _ int) varDoc { return docOf(id) }),
			jsontext.WithIndent("  "))
		sb.WriteString("\n")
	case ListYAML:
		var out []byte
		out, err = yaml.Marshal(lo.Map(All(), func(id VarId, _ int) varDoc { return docOf(id) }))
		sb.Write(out)
	default:
		return fmt.Errorf("unknown list mode %d", int(mode))
	}
	if err != nil {
		return err
	}

	text := sb.String()
	if linePrefix != "" {
		lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
		text = linePrefix + strings.Join(lines, "\n"+linePrefix) + "\n"
	}
	_, err = io.WriteString(w, text)
	return err
}

func writeShortList(w io.Writer) error {
	table := newListTable(w)
	table.Header([]string{"NAME", "TYPE", "GROUP", "DEFAULT"})
	for _, id := range All() {
		doc := docOf(id)
		def := "<required>"
		if doc.Default != nil {
			def = *doc.Default
			if def == "" {
				def = `""`
			}
		}
		if err := table.Append([]string{doc.Name, doc.Type, doc.Group, def}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func writeFullList(w io.Writer) error {
	for i, id := range All() {
		doc := docOf(id)
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := fmt.Sprintf("%s [%s, %s]", doc.Name, doc.Type, doc.Group)
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		defLine := "  no default value (required when used)"
		if doc.Default != nil {
			defLine = fmt.Sprintf("  default: %q", *doc.Default)
		}
		if _, err := fmt.Fprintln(w, defLine); err != nil {
			return err
		}
		for _, line := range wrapText(doc.Description, descriptionWrapWidth) {
			if _, err := fmt.Fprintln(w, "  "+line); err != nil {
				return err
			}
		}
	}
	return nil
}

// wrapText word-wraps s to the given display width, measuring with
// runewidth so wide runes count properly.
func wrapText(s string, width int) []string {
	var lines []string
	var current strings.Builder
	currentWidth := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+ww > width {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += ww
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
