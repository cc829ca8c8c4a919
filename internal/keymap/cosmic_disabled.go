//go:build !cosmic

package keymap

import "github.com/derdilla/setwlkbmap/internal/desktop"

// CosmicEnabled reports whether COSMIC epoch support was compiled in.
const CosmicEnabled = false

const cosmicDisabled = "COSMIC epoch support was disabled during build."

// CosmicEpoch is a stand-in that always fails. Build with -tags cosmic to
// enable the real backend.
type CosmicEpoch struct{}

func NewCosmicEpoch(string) *CosmicEpoch {
	return &CosmicEpoch{}
}

func (*CosmicEpoch) SetKeymap(Request) error {
	return &UnsupportedError{Desktop: desktop.CosmicEpoch, Reason: cosmicDisabled}
}
