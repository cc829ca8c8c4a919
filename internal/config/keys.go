package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Keymap used when no layout or variant is given on the command line
	KeyDefaultLayout  = "DEFAULT_LAYOUT"
	KeyDefaultVariant = "DEFAULT_VARIANT"

	// Hyprland configuration
	KeyHyprlandConfig    = "HYPRLAND_CONFIG"     // hyprland.conf path, empty for $XDG_CONFIG_HOME/hypr/hyprland.conf
	KeyHyprlandBlockMode = "HYPRLAND_BLOCK_MODE" // "append" or "replace"

	// XKB rules registry used by the layout picker
	KeyXKBRules = "XKB_RULES"
)

// Defaults holds values for keys that are not set in the file
var Defaults = map[string]string{
	KeyHyprlandBlockMode: "append",
	KeyXKBRules:          "/usr/share/X11/xkb/rules/evdev.xml",
}

// Keys lists every accepted configuration key in display order
var Keys = []string{
	KeyDefaultLayout,
	KeyDefaultVariant,
	KeyHyprlandConfig,
	KeyHyprlandBlockMode,
	KeyXKBRules,
}

// IsKnownKey reports whether key is one of Keys
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
