package keymap

import "github.com/derdilla/setwlkbmap/internal/desktop"

const cinnamonUnsupported = `As of June 2025 cinnamon wayland is still experimental and doesn't yet support switching
 the keyboard layout. You can check if that's still the case by opening the keyboard settings dialog
 and looking for an 'Layout' tab. In case this changed consider opening an issue or submitting a
 patch at https://github.com/derdilla/setwlkbmap.`

func setKeymapCinnamon(Request) error {
	return &UnsupportedError{Desktop: desktop.Cinnamon, Reason: cinnamonUnsupported}
}
