// Package factreq parses compact factory-selection strings into immutable
// Request values.
//
// A request string consists of entries separated by "@" signs. An entry is
// either a factory name (requesting that specific factory) or a factory name
// prefixed with "!" (excluding that factory). At most one non-excluded entry
// may appear. Factory names consist of ASCII letters, digits, '_' and '-'.
//
//	"myfact"            -> request factory myfact
//	"!notthis@myfact"   -> request myfact, excluding notthis
//	"!aaa@!bbb"         -> exclude aaa and bbb
package factreq

import (
	"fmt"
	"slices"
	"strings"
)

// SyntaxError reports a malformed or self-contradictory factory-request
// string. All parse failures in this package are of this type.
type SyntaxError struct {
	msg string
}

func (e *SyntaxError) Error() string {
	return e.msg
}

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{msg: fmt.Sprintf(format, args...)}
}

// Request tracks a request for a specific named factory and/or the exclusion
// of a list of named factories. The zero value is the empty request.
//
// Requests are immutable: the derivation methods return new values and never
// modify the receiver, so a Request can be shared freely between goroutines.
type Request struct {
	specific string
	excluded []string
}

// Parse parses a factory-request string. Parsing is total and deterministic;
// identical inputs always yield identical Requests.
func Parse(s string) (Request, error) {
	var res Request
	for entry := range strings.SplitSeq(s, "@") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if name, negated := strings.CutPrefix(entry, "!"); negated {
			name = strings.TrimSpace(name)
			if err := checkFactoryName(name); err != nil {
				return Request{}, err
			}
			if !res.Excludes(name) {
				res.excluded = append(res.excluded, name)
			}
			continue
		}
		if err := checkFactoryName(entry); err != nil {
			return Request{}, err
		}
		if res.specific != "" {
			return Request{}, syntaxErrorf("contains more than one (non-negated) entry (%q and %q)",
				res.specific, entry)
		}
		res.specific = entry
	}
	if res.specific != "" && res.Excludes(res.specific) {
		return Request{}, syntaxErrorf("the factory %q is specified as being simultaneously required and excluded",
			res.specific)
	}
	return res, nil
}

// HasSpecificRequest reports whether a specific factory was requested.
func (r Request) HasSpecificRequest() bool {
	return r.specific != ""
}

// SpecificRequest returns the requested factory name, or "" if none.
func (r Request) SpecificRequest() string {
	return r.specific
}

// Excludes reports whether the named factory is excluded.
func (r Request) Excludes(name string) bool {
	// tiny lists, just do linear search
	return slices.Contains(r.excluded, name)
}

// ExcludedNames returns the excluded factory names in insertion order.
// The returned slice is a copy.
func (r Request) ExcludedNames() []string {
	return slices.Clone(r.excluded)
}

// String renders the request in canonical form: the specific factory first
// (if any), followed by "!"-prefixed exclusions, joined with "@". Parsing
// the result yields an equal Request.
func (r Request) String() string {
	entries := make([]string, 0, 1+len(r.excluded))
	if r.specific != "" {
		entries = append(entries, r.specific)
	}
	for _, e := range r.excluded {
		entries = append(entries, "!"+e)
	}
	return strings.Join(entries, "@")
}

// WithAdditionalExclude returns a copy of the request with the named factory
// excluded. If the factory is already excluded the receiver is returned
// unchanged. Excluding the specifically requested factory is an error.
func (r Request) WithAdditionalExclude(name string) (Request, error) {
	name = strings.TrimSpace(name)
	if err := checkFactoryName(name); err != nil {
		return Request{}, err
	}
	if r.Excludes(name) {
		return r, nil
	}
	if r.specific == name {
		return Request{}, syntaxErrorf("the factory %q is specified as being simultaneously required and excluded", name)
	}
	return Request{
		specific: r.specific,
		excluded: append(slices.Clone(r.excluded), name),
	}, nil
}

// WithNoSpecificRequest returns a copy of the request with any specific
// factory request cleared, keeping the exclusions.
func (r Request) WithNoSpecificRequest() Request {
	return Request{excluded: slices.Clone(r.excluded)}
}

func checkFactoryName(name string) error {
	if name == "" {
		return syntaxErrorf("not a valid factory name: %q", name)
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return syntaxErrorf("not a valid factory name: %q", name)
		}
	}
	return nil
}
