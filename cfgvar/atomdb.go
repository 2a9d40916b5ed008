package cfgvar

import (
	"fmt"
	"strings"
)

// AtomDBLineValidator validates one normalized atomdb line, given its
// whitespace-split fields (never empty). Consumers that understand the full
// atomdb line syntax (e.g. NCMAT readers) should install their own validator
// before parsing; the default only performs a token-level sanity check.
//
// The validator must be installed before concurrent use of the package
// begins; it is read without locking during parsing.
var AtomDBLineValidator = defaultAtomDBLineValidator

func defaultAtomDBLineValidator(fields []string) error {
	if fields[0] == "nodefaults" && len(fields) > 1 {
		return fmt.Errorf(`"nodefaults" must appear alone on its line`)
	}
	for _, f := range fields {
		for _, c := range f {
			switch {
			case c >= 'a' && c <= 'z':
			case c >= 'A' && c <= 'Z':
			case c >= '0' && c <= '9':
			case c == '_' || c == '.' || c == '+' || c == '-' || c == '(' || c == ')' || c == '%':
			default:
				return fmt.Errorf("invalid character %q in %q", c, f)
			}
		}
	}
	return nil
}

// parseAtomDB normalizes an atomdb override string: '@' separates lines,
// ':' counts as whitespace within a line, whitespace runs collapse, and the
// words of each line are re-joined with ':' in the canonical form. A
// "nodefaults" line is only legal as the first line.
func parseAtomDB(raw string) (string, error) {
	var lines []string
	for line := range strings.SplitSeq(raw, "@") {
		line = strings.ReplaceAll(line, ":", " ")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		joined := strings.Join(fields, ":")
		if err := AtomDBLineValidator(fields); err != nil {
			return "", fmt.Errorf("invalid entry in line %q: %w", joined, err)
		}
		if joined == "nodefaults" && len(lines) > 0 {
			return "", fmt.Errorf(`"nodefaults" must be the first line`)
		}
		lines = append(lines, joined)
	}
	return strings.Join(lines, "@"), nil
}
