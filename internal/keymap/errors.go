package keymap

import (
	"errors"
	"fmt"

	"github.com/derdilla/setwlkbmap/internal/desktop"
)

var (
	// ErrInvalidRequest is wrapped by every error caused by the request itself.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyRequest is returned when neither a layout nor a variant was given.
	ErrEmptyRequest = fmt.Errorf("%w: please provide a layout or variant", ErrInvalidRequest)

	// ErrLayoutRequired is returned by backends that cannot set a variant alone.
	ErrLayoutRequired = fmt.Errorf("%w: a layout is required to set the GNOME keymap", ErrInvalidRequest)
)

// UnimplementedError is returned for desktops without a backend.
type UnimplementedError struct {
	Desktop desktop.Environment
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("setting the keymap is not implemented for %s", e.Desktop)
}

// UnsupportedError is returned when a desktop has a backend that
// intentionally refuses the operation.
type UnsupportedError struct {
	Desktop desktop.Environment
	Reason  string
}

func (e *UnsupportedError) Error() string {
	return e.Reason
}

// ConfigWriteError is returned when a configuration file could not be
// opened or written.
type ConfigWriteError struct {
	Path string
	Err  error
}

func (e *ConfigWriteError) Error() string {
	return fmt.Sprintf("failed to write config file %s: %v", e.Path, e.Err)
}

func (e *ConfigWriteError) Unwrap() error {
	return e.Err
}
