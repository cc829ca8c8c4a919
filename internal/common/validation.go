package common

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePath validates that a path is absolute
func ValidatePath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("path must be absolute: %s", path)
	}
	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateKeymapToken rejects layout or variant values that would corrupt the
// files and lists they are written into. Whether XKB knows the name is not
// checked.
func ValidateKeymapToken(token string) error {
	for _, c := range token {
		switch {
		case unicode.IsSpace(c):
			return fmt.Errorf("keymap name contains whitespace: %q", token)
		case c == '\'' || c == '"' || c == '#' || c == '(' || c == ')' || c == ',':
			return fmt.Errorf("keymap name contains invalid character %q: %q", c, token)
		case unicode.IsControl(c):
			return fmt.Errorf("keymap name contains a control character: %q", token)
		}
	}
	return nil
}
