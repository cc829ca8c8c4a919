// Package desktop identifies the desktop environment or compositor that
// owns the current session.
package desktop

import (
	"fmt"
	"os"
	"strings"
)

// Environment is a known desktop environment or compositor.
type Environment int

const (
	Unknown Environment = iota
	Cinnamon
	Cosmic
	CosmicEpoch
	Dde
	Ede
	Endless
	Enlightenment
	Gnome
	Hyprland
	Kde
	Lxde
	Lxqt
	MacOS
	Mate
	Old
	Pantheon
	Razor
	Rox
	Sway
	Tde
	Unity
	Windows
	Xfce
	Niri
	Wayfire
	River
	Labwc
	endEnvironment
)

var names = map[Environment]string{
	Unknown:       "Unknown",
	Cinnamon:      "Cinnamon",
	Cosmic:        "Cosmic",
	CosmicEpoch:   "CosmicEpoch",
	Dde:           "Dde",
	Ede:           "Ede",
	Endless:       "Endless",
	Enlightenment: "Enlightenment",
	Gnome:         "Gnome",
	Hyprland:      "Hyprland",
	Kde:           "Kde",
	Lxde:          "Lxde",
	Lxqt:          "Lxqt",
	MacOS:         "MacOs",
	Mate:          "Mate",
	Old:           "Old",
	Pantheon:      "Pantheon",
	Razor:         "Razor",
	Rox:           "Rox",
	Sway:          "Sway",
	Tde:           "Tde",
	Unity:         "Unity",
	Windows:       "Windows",
	Xfce:          "Xfce",
	Niri:          "Niri",
	Wayfire:       "Wayfire",
	River:         "River",
	Labwc:         "Labwc",
}

// aliases maps lower-cased XDG_CURRENT_DESKTOP entries to environments.
var aliases = map[string]Environment{
	"cinnamon":        Cinnamon,
	"x-cinnamon":      Cinnamon,
	"pop":             Cosmic,
	"cosmic":          CosmicEpoch,
	"deepin":          Dde,
	"dde":             Dde,
	"ede":             Ede,
	"endless":         Endless,
	"enlightenment":   Enlightenment,
	"gnome":           Gnome,
	"gnome-classic":   Gnome,
	"gnome-flashback": Gnome,
	"hyprland":        Hyprland,
	"kde":             Kde,
	"plasma":          Kde,
	"lxde":            Lxde,
	"lxqt":            Lxqt,
	"mate":            Mate,
	"old":             Old,
	"pantheon":        Pantheon,
	"razor":           Razor,
	"rox":             Rox,
	"sway":            Sway,
	"tde":             Tde,
	"trinity":         Tde,
	"unity":           Unity,
	"xfce":            Xfce,
	"niri":            Niri,
	"wayfire":         Wayfire,
	"river":           River,
	"labwc":           Labwc,
}

func (e Environment) String() string {
	if name, ok := names[e]; ok {
		return name
	}
	return fmt.Sprintf("Environment(%d)", int(e))
}

// All returns every known environment except Unknown, in declaration order.
func All() []Environment {
	all := make([]Environment, 0, int(endEnvironment)-1)
	for e := Unknown + 1; e < endEnvironment; e++ {
		all = append(all, e)
	}
	return all
}

// Parse resolves a desktop name as printed by String, falling back to the
// names found in XDG_CURRENT_DESKTOP. Matching is case-insensitive.
func Parse(name string) (Environment, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for e, n := range names {
		if e != Unknown && strings.ToLower(n) == key {
			return e, nil
		}
	}
	if e, ok := aliases[key]; ok {
		return e, nil
	}
	return Unknown, fmt.Errorf("unknown desktop environment: %q", name)
}

// Detect inspects the session environment variables. It returns false when
// no known desktop could be identified.
func Detect() (Environment, bool) {
	return detect(os.Getenv)
}

func detect(getenv func(string) string) (Environment, bool) {
	// XDG_CURRENT_DESKTOP is a colon separated list, most specific first
	for _, entry := range strings.Split(getenv("XDG_CURRENT_DESKTOP"), ":") {
		if e, ok := aliases[strings.ToLower(strings.TrimSpace(entry))]; ok {
			return e, true
		}
	}

	if getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return Hyprland, true
	}
	if getenv("SWAYSOCK") != "" {
		return Sway, true
	}
	if getenv("KDE_FULL_SESSION") != "" {
		return Kde, true
	}
	if getenv("GNOME_DESKTOP_SESSION_ID") != "" {
		return Gnome, true
	}

	for _, v := range []string{"DESKTOP_SESSION", "XDG_SESSION_DESKTOP"} {
		session := strings.ToLower(getenv(v))
		if session == "" {
			continue
		}
		if e, ok := aliases[session]; ok {
			return e, true
		}
		// e.g. /usr/share/xsessions/plasma
		if i := strings.LastIndex(session, "/"); i >= 0 {
			if e, ok := aliases[session[i+1:]]; ok {
				return e, true
			}
		}
	}

	return Unknown, false
}
