package keymap

import "github.com/derdilla/setwlkbmap/internal/system"

const (
	swaymsg           = "swaymsg"
	swayKeyboardInput = "type:keyboard"
	// swaymsg hands its arguments to sway's own command parser, which reads
	// '' as an empty string.
	swayEmptyValue = "''"
)

// Sway configures every keyboard input through swaymsg. Standard error of
// swaymsg is always shown because it carries sway's xkb validation errors.
type Sway struct {
	runner system.CommandRunner
}

func NewSway(runner system.CommandRunner) *Sway {
	return &Sway{runner: runner}
}

func (s *Sway) SetKeymap(req Request) error {
	// sway compiles the keymap after every command, so a variant left over
	// from the previous layout would make the new layout fail to load
	if err := s.input("xkb_variant", swayEmptyValue); err != nil {
		return err
	}

	if req.HasLayout() {
		if err := s.input("xkb_layout", req.Layout); err != nil {
			return err
		}
	}

	if req.HasVariant() {
		if err := s.input("xkb_variant", req.Variant); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sway) input(setting, value string) error {
	return s.runner.RunVisible(swaymsg, "input", swayKeyboardInput, setting, value)
}
