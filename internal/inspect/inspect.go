// Package inspect reads the keyboard layout a desktop environment is
// currently using. It never changes any setting.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/derdilla/setwlkbmap/internal/desktop"
	"github.com/derdilla/setwlkbmap/internal/keymap"
	"github.com/derdilla/setwlkbmap/internal/system"
	"go.uber.org/zap"
)

// ErrNotSupported is returned for desktops that cannot be queried.
var ErrNotSupported = errors.New("reading the current keymap is not supported for this desktop")

// Keymap is the keyboard configuration of one device or of the whole session.
type Keymap struct {
	// Device is empty when the desktop has a single session-wide setting.
	Device      string
	Layout      string
	Variant     string
	Description string
}

// Inspector queries the current keymap.
type Inspector struct {
	runner   system.CommandRunner
	sway     func(ctx context.Context) ([]Keymap, error)
	hyprland func(ctx context.Context) ([]Keymap, error)
	log      *zap.SugaredLogger
}

// New creates an Inspector. Sway and Hyprland are queried over their IPC
// sockets, the other desktops through their command line tools.
func New(runner system.CommandRunner, log *zap.SugaredLogger) *Inspector {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Inspector{
		runner:   runner,
		sway:     swayKeymaps,
		hyprland: hyprlandKeymaps,
		log:      log,
	}
}

// Current returns the active keymaps for env.
func (i *Inspector) Current(ctx context.Context, env desktop.Environment) ([]Keymap, error) {
	i.log.Debugw("reading current keymap", "desktop", env)

	switch env {
	case desktop.Sway:
		return i.sway(ctx)
	case desktop.Hyprland:
		return i.hyprland(ctx)
	case desktop.Gnome:
		return i.gnome()
	case desktop.Kde:
		return i.kde()
	case desktop.Xfce:
		return i.xfce()
	}
	return nil, fmt.Errorf("%w: %s", ErrNotSupported, env)
}

func (i *Inspector) gnome() ([]Keymap, error) {
	raw, err := i.runner.Output("gsettings", "get", "org.gnome.desktop.input-sources", "sources")
	if err != nil {
		return nil, fmt.Errorf("read input sources: %w", err)
	}
	current, err := i.runner.Output("gsettings", "get", "org.gnome.desktop.input-sources", "current")
	if err != nil {
		return nil, fmt.Errorf("read current input source: %w", err)
	}

	index, err := parseGVariantUint(current)
	if err != nil {
		return nil, err
	}

	sources := keymap.ParseInputSources(raw)
	for _, e := range sources.Entries {
		if e.Position == index {
			return []Keymap{{Layout: e.Layout, Variant: e.Variant}}, nil
		}
	}
	if len(sources.Entries) > 0 {
		// gnome falls back to the first source when current is out of range
		e := sources.Entries[0]
		return []Keymap{{Layout: e.Layout, Variant: e.Variant}}, nil
	}
	return nil, nil
}

// parseGVariantUint parses gsettings output such as "uint32 1".
func parseGVariantUint(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty gsettings value")
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, fmt.Errorf("parse gsettings value %q: %w", s, err)
	}
	return n, nil
}

func (i *Inspector) kde() ([]Keymap, error) {
	read := func(key string) (string, error) {
		out, err := i.runner.Output("kreadconfig6", "--file", "kxkbrc", "--group", "Layout", "--key", key)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", key, err)
		}
		return strings.TrimSpace(out), nil
	}

	layouts, err := read("LayoutList")
	if err != nil {
		return nil, err
	}
	variants, err := read("VariantList")
	if err != nil {
		return nil, err
	}
	return []Keymap{{Layout: layouts, Variant: variants}}, nil
}

func (i *Inspector) xfce() ([]Keymap, error) {
	read := func(property string) string {
		out, err := i.runner.Output("xfconf-query", "-c", "keyboard-layout", "-p", property)
		if err != nil {
			// unset properties make xfconf-query exit with 1
			i.log.Debugw("xfconf property not readable", "property", property, "error", err)
			return ""
		}
		return strings.TrimSpace(out)
	}

	if read("/Default/XkbDisable") == "true" {
		return []Keymap{{Description: "system default (keyboard settings override disabled)"}}, nil
	}
	return []Keymap{{Layout: read("/Default/XkbLayout"), Variant: read("/Default/XkbVariant")}}, nil
}
