//go:build cosmic

package keymap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
)

// CosmicEnabled reports whether COSMIC epoch support was compiled in.
const CosmicEnabled = true

const (
	cosmicCompConfig        = "com.system76.CosmicComp"
	cosmicCompConfigVersion = "v1"
	cosmicXkbConfigKey      = "xkb_config"
)

// defaultCosmicXkbConfig is what cosmic-comp assumes when xkb_config was
// never written.
const defaultCosmicXkbConfig = `(
    rules: "",
    model: "",
    layout: "",
    variant: "",
    options: None,
    repeat_delay: 600,
    repeat_rate: 25,
)
`

// CosmicEpoch edits the xkb_config entry of cosmic-comp's cosmic-config
// store. cosmic-comp watches the file and applies changes immediately.
type CosmicEpoch struct {
	dir string
}

// NewCosmicEpoch creates the backend for the cosmic-config root dir, which
// defaults to $XDG_CONFIG_HOME/cosmic.
func NewCosmicEpoch(dir string) *CosmicEpoch {
	if dir == "" {
		dir = filepath.Join(xdg.ConfigHome, "cosmic")
	}
	return &CosmicEpoch{dir: dir}
}

func (c *CosmicEpoch) path() string {
	return filepath.Join(c.dir, cosmicCompConfig, cosmicCompConfigVersion, cosmicXkbConfigKey)
}

func (c *CosmicEpoch) SetKeymap(req Request) error {
	path := c.path()

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		content = []byte(defaultCosmicXkbConfig)
	case err != nil:
		return fmt.Errorf("failed to load cosmic config: %w", err)
	}

	updated := string(content)
	if req.HasLayout() {
		updated = setRONString(updated, "layout", req.Layout)
	}
	if req.HasVariant() {
		updated = setRONString(updated, "variant", req.Variant)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}
	if err := writeFileAtomic(path, []byte(updated), 0644); err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}
	return nil
}

// setRONString sets a string field of a RON struct literal, adding the
// field before the closing parenthesis when it is missing.
func setRONString(ron, field, value string) string {
	quoted := strconv.Quote(value)
	re := regexp.MustCompile(`(?m)^(\s*` + regexp.QuoteMeta(field) + `\s*:\s*)"(?:[^"\\]|\\.)*"`)
	if loc := re.FindStringSubmatchIndex(ron); loc != nil {
		return ron[:loc[3]] + quoted + ron[loc[1]:]
	}

	end := strings.LastIndex(ron, ")")
	if end < 0 {
		return ron
	}
	head := strings.TrimRight(ron[:end], " \t\n")
	if !strings.HasSuffix(head, ",") && !strings.HasSuffix(head, "(") {
		head += ","
	}
	return head + "\n    " + field + ": " + quoted + ",\n" + ron[end:]
}
