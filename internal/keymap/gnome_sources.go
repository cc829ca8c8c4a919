package keymap

import (
	"fmt"
	"regexp"
	"strings"
)

// xkbSourceKind is the only input source kind this package creates or matches.
const xkbSourceKind = "xkb"

// sourceTuple matches one ('kind', 'id') element of a gsettings a(ss) list.
// gsettings switches to double quotes for strings containing a single quote,
// so each side is either form. Submatches 1/2 hold the kind, 3/4 the id.
var sourceTuple = regexp.MustCompile(`\((?:'((?:[^'\\]|\\.)*)'|"((?:[^"\\]|\\.)*)"), (?:'((?:[^'\\]|\\.)*)'|"((?:[^"\\]|\\.)*)")\)`)

// InputSource is one xkb entry of GNOME's org.gnome.desktop.input-sources
// sources list.
type InputSource struct {
	Layout  string
	Variant string
	// Position is the index of the entry in the full sources list, counting
	// non-xkb sources such as ibus engines.
	Position int
}

// InputSources is the decoded form of a sources list.
type InputSources struct {
	Entries []InputSource
	// Total counts every tuple in the list, including the ones that are not
	// xkb sources.
	Total int
}

// ParseInputSources decodes the output of
// `gsettings get org.gnome.desktop.input-sources sources`, e.g.
// [('xkb', 'us'), ('xkb', 'ca+eng')]. Text that is not a tuple is ignored
// and empty input yields an empty list.
func ParseInputSources(text string) InputSources {
	var sources InputSources
	for _, m := range sourceTuple.FindAllStringSubmatch(text, -1) {
		position := sources.Total
		sources.Total++
		kind, id := m[1]+m[2], m[3]+m[4]
		if kind != xkbSourceKind || id == "" {
			continue
		}
		layout, variant, _ := strings.Cut(id, "+")
		sources.Entries = append(sources.Entries, InputSource{
			Layout:   layout,
			Variant:  variant,
			Position: position,
		})
	}
	return sources
}

// Find returns the list position of the entry with exactly this layout and
// variant. An empty variant only matches entries without a variant.
func (s InputSources) Find(layout, variant string) (int, bool) {
	for _, e := range s.Entries {
		if e.Layout == layout && e.Variant == variant {
			return e.Position, true
		}
	}
	return -1, false
}

// AppendInputSource adds an xkb entry to the end of a sources list in its
// textual form. Existing entries are kept byte for byte.
func AppendInputSource(text, layout, variant string) string {
	entry := formatInputSource(layout, variant)

	text = strings.TrimSpace(text)
	end := strings.LastIndex(text, "]")
	if end < 0 || isEmptySourceList(text, end) {
		return "[" + entry + "]"
	}
	return text[:end] + ", " + entry + text[end:]
}

func formatInputSource(layout, variant string) string {
	id := layout
	if variant != "" {
		id += "+" + variant
	}
	return fmt.Sprintf("('%s', '%s')", xkbSourceKind, id)
}

// isEmptySourceList reports whether the brackets ending at end enclose
// nothing. gsettings prints an empty list as "@a(ss) []".
func isEmptySourceList(text string, end int) bool {
	start := strings.LastIndex(text[:end], "[")
	if start < 0 {
		return true
	}
	return strings.TrimSpace(text[start+1:end]) == ""
}
