// Package printfmt rewrites the `{name}` placeholders of a print literal
// into format specifiers. Extraction and substitution are separate passes so
// that the argument order always follows the placeholders left to right.
package printfmt

import (
	"regexp"
	"strings"

	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/types"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

type Placeholder struct {
	Name  string
	Type  types.VarType
	Start int
	End   int
}

type Lookup func(name string) (types.VarType, error)

// Locate finds every unescaped placeholder in lit, left to right. The
// returned placeholders carry no type yet.
func Locate(lit string) []Placeholder {
	var ret []Placeholder

	for _, m := range placeholderRe.FindAllStringSubmatchIndex(lit, -1) {
		if m[0] > 0 && lit[m[0]-1] == '\\' {
			continue
		}
		ret = append(ret, Placeholder{Name: lit[m[2]:m[3]], Start: m[0], End: m[1]})
	}

	return ret
}

// Extract finds every unescaped placeholder in lit and resolves its type.
func Extract(lit string, lookup Lookup) ([]Placeholder, error) {
	ret := Locate(lit)

	for i, ph := range ret {
		t, err := lookup(ph.Name)
		if err != nil {
			return nil, errors.RenderError{Node: "print " + lit, Reason: "placeholder {" + ph.Name + "} does not name a declared variable"}
		}
		ret[i].Type = t
	}

	return ret, nil
}

// Substitute replaces each placeholder with spec(type). Escaped braces are
// unescaped and every other percent sign is doubled for printf.
func Substitute(lit string, placeholders []Placeholder, spec func(types.VarType) (string, error)) (string, error) {
	var b strings.Builder
	last := 0

	for _, ph := range placeholders {
		s, err := spec(ph.Type)
		if err != nil {
			return "", err
		}
		b.WriteString(unescape(lit[last:ph.Start]))
		b.WriteString(s)
		last = ph.End
	}
	b.WriteString(unescape(lit[last:]))

	return b.String(), nil
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, "%", "%%")
	return strings.ReplaceAll(s, `\{`, "{")
}
