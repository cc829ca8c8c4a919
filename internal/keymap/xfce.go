package keymap

import "github.com/derdilla/setwlkbmap/internal/system"

const (
	xfconfQuery   = "xfconf-query"
	xfceKbChannel = "keyboard-layout"
)

// XFCE sets keyboard-layout channel properties with xfconf-query.
type XFCE struct {
	runner system.CommandRunner
}

func NewXFCE(runner system.CommandRunner) *XFCE {
	return &XFCE{runner: runner}
}

func (x *XFCE) SetKeymap(req Request) error {
	// xfce ignores XkbLayout and XkbVariant while XkbDisable is set
	if err := x.setProperty("/Default/XkbDisable", "false"); err != nil {
		return err
	}

	if req.HasLayout() {
		if err := x.setProperty("/Default/XkbLayout", req.Layout); err != nil {
			return err
		}
	}

	if req.HasVariant() {
		if err := x.setProperty("/Default/XkbVariant", req.Variant); err != nil {
			return err
		}
	}

	return nil
}

func (x *XFCE) setProperty(property, value string) error {
	return x.runner.Run(xfconfQuery, "-c", xfceKbChannel, "-p", property, "-s", value)
}
