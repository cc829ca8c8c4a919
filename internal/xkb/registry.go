// Package xkb reads the XKB rules registry (evdev.xml) that lists every
// keyboard layout and variant installed on the system.
package xkb

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
)

// DefaultRulesPath is where xkeyboard-config installs the evdev registry.
const DefaultRulesPath = "/usr/share/X11/xkb/rules/evdev.xml"

type Registry struct {
	XMLName    xml.Name   `xml:"xkbConfigRegistry"`
	LayoutList layoutList `xml:"layoutList"`
}

type configItem struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
}

type variant struct {
	ConfigItem configItem `xml:"configItem"`
}

type variantList struct {
	Variant []variant `xml:"variant"`
}

type layout struct {
	ConfigItem  configItem  `xml:"configItem"`
	VariantList variantList `xml:"variantList"`
}

type layoutList struct {
	Layout []layout `xml:"layout"`
}

// Entry is a layout or variant code with its human readable description.
type Entry struct {
	Code        string
	Description string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s - %s", e.Code, e.Description)
}

// Load parses the registry file at path.
func Load(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes a registry document.
func Parse(r io.Reader) (*Registry, error) {
	registry := &Registry{}
	if err := xml.NewDecoder(r).Decode(registry); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	return registry, nil
}

// Layouts returns every layout sorted by code.
func (r *Registry) Layouts() []Entry {
	out := make([]Entry, 0, len(r.LayoutList.Layout))
	for _, l := range r.LayoutList.Layout {
		out = append(out, Entry{Code: l.ConfigItem.Name, Description: l.ConfigItem.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Variants returns the variants of a layout in registry order. ok is false
// when the layout is unknown.
func (r *Registry) Variants(layoutCode string) (variants []Entry, ok bool) {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name != layoutCode {
			continue
		}
		for _, v := range l.VariantList.Variant {
			variants = append(variants, Entry{Code: v.ConfigItem.Name, Description: v.ConfigItem.Description})
		}
		return variants, true
	}
	return nil, false
}

// Describe returns the description of a layout or, when variantCode is set,
// of that variant. It returns "" for unknown codes.
func (r *Registry) Describe(layoutCode, variantCode string) string {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name != layoutCode {
			continue
		}
		if variantCode == "" {
			return l.ConfigItem.Description
		}
		for _, v := range l.VariantList.Variant {
			if v.ConfigItem.Name == variantCode {
				return v.ConfigItem.Description
			}
		}
	}
	return ""
}
