// Package keymap applies a keyboard layout and variant to the running
// desktop environment. Every desktop keeps its keyboard settings in its own
// store, so each one gets a Backend that speaks that store's native tool or
// file format. Setter picks the Backend for a detected desktop.
package keymap

import "fmt"

// Request is a keyboard layout and/or variant to apply. An empty string
// means the field was not given.
type Request struct {
	Layout  string
	Variant string
}

// HasLayout reports whether a layout was requested.
func (r Request) HasLayout() bool {
	return r.Layout != ""
}

// HasVariant reports whether a variant was requested.
func (r Request) HasVariant() bool {
	return r.Variant != ""
}

// Validate rejects a request that carries neither a layout nor a variant.
func (r Request) Validate() error {
	if !r.HasLayout() && !r.HasVariant() {
		return ErrEmptyRequest
	}
	return nil
}

func (r Request) String() string {
	switch {
	case r.HasLayout() && r.HasVariant():
		return fmt.Sprintf("%s(%s)", r.Layout, r.Variant)
	case r.HasLayout():
		return r.Layout
	default:
		return fmt.Sprintf("(%s)", r.Variant)
	}
}
