package xkb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testRegistry = `<?xml version="1.0" encoding="UTF-8"?>
<xkbConfigRegistry version="1.1">
  <layoutList>
    <layout>
      <configItem>
        <name>us</name>
        <description>English (US)</description>
      </configItem>
      <variantList>
        <variant>
          <configItem>
            <name>dvorak</name>
            <description>English (Dvorak)</description>
          </configItem>
        </variant>
      </variantList>
    </layout>
    <layout>
      <configItem>
        <name>de</name>
        <description>German</description>
      </configItem>
      <variantList>
        <variant>
          <configItem>
            <name>nodeadkeys</name>
            <description>German (no dead keys)</description>
          </configItem>
        </variant>
        <variant>
          <configItem>
            <name>neo</name>
            <description>German (Neo 2)</description>
          </configItem>
        </variant>
      </variantList>
    </layout>
  </layoutList>
</xkbConfigRegistry>
`

func TestParseLayouts(t *testing.T) {
	r, err := Parse(strings.NewReader(testRegistry))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	layouts := r.Layouts()
	if len(layouts) != 2 {
		t.Fatalf("len(Layouts()) = %d, want 2", len(layouts))
	}
	if layouts[0].Code != "de" || layouts[1].Code != "us" {
		t.Errorf("Layouts() = %v, want sorted by code", layouts)
	}
	if layouts[0].String() != "de - German" {
		t.Errorf("String() = %q", layouts[0].String())
	}
}

func TestVariants(t *testing.T) {
	r, err := Parse(strings.NewReader(testRegistry))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	variants, ok := r.Variants("de")
	if !ok || len(variants) != 2 || variants[0].Code != "nodeadkeys" || variants[1].Code != "neo" {
		t.Errorf("Variants(de) = %v, %v", variants, ok)
	}
	if _, ok := r.Variants("xx"); ok {
		t.Error("Variants(xx) ok = true, want false")
	}
}

func TestDescribe(t *testing.T) {
	r, err := Parse(strings.NewReader(testRegistry))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		layout, variant, want string
	}{
		{"us", "", "English (US)"},
		{"de", "neo", "German (Neo 2)"},
		{"de", "missing", ""},
		{"xx", "", ""},
	}
	for _, tt := range tests {
		if got := r.Describe(tt.layout, tt.variant); got != tt.want {
			t.Errorf("Describe(%q, %q) = %q, want %q", tt.layout, tt.variant, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evdev.xml")
	if err := os.WriteFile(path, []byte(testRegistry), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load() error = %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}
