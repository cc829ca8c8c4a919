package keymap

import (
	"github.com/derdilla/setwlkbmap/internal/desktop"
	"github.com/derdilla/setwlkbmap/internal/system"
	"go.uber.org/zap"
)

// Backend applies a keymap using one desktop's native mechanism.
type Backend interface {
	SetKeymap(req Request) error
}

// BackendFunc adapts a plain function to Backend.
type BackendFunc func(req Request) error

// SetKeymap calls f(req).
func (f BackendFunc) SetKeymap(req Request) error {
	return f(req)
}

// Options configures the backends created by NewSetter.
type Options struct {
	Runner system.CommandRunner
	Log    *zap.SugaredLogger

	// KDENotifier is told to reload the keyboard configuration after KDE
	// writes. Nil disables the notification.
	KDENotifier ReloadNotifier

	// HyprlandConfig is the hyprland.conf path. Empty means the XDG default.
	HyprlandConfig string
	HyprlandMode   BlockMode

	// CosmicConfigDir is the cosmic-config root. Empty means the XDG default.
	CosmicConfigDir string
}

// Setter maps a desktop environment to its Backend.
type Setter struct {
	backends map[desktop.Environment]Backend
}

// NewSetter creates a Setter with every available backend registered.
func NewSetter(opts Options) *Setter {
	if opts.Runner == nil {
		opts.Runner = system.NewCommandRunner(opts.Log)
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}

	return &Setter{
		backends: map[desktop.Environment]Backend{
			desktop.Kde:         NewKDE(opts.Runner, opts.KDENotifier, opts.Log),
			desktop.Xfce:        NewXFCE(opts.Runner),
			desktop.Gnome:       NewGNOME(opts.Runner, opts.Log),
			desktop.Sway:        NewSway(opts.Runner),
			desktop.Hyprland:    NewHyprland(opts.Runner, opts.HyprlandConfig, opts.HyprlandMode, opts.Log),
			desktop.Cinnamon:    BackendFunc(setKeymapCinnamon),
			desktop.CosmicEpoch: NewCosmicEpoch(opts.CosmicConfigDir),
		},
	}
}

// Backend returns the backend registered for env, or an
// *UnimplementedError when there is none.
func (s *Setter) Backend(env desktop.Environment) (Backend, error) {
	b, ok := s.backends[env]
	if !ok {
		return nil, &UnimplementedError{Desktop: env}
	}
	return b, nil
}

// Apply validates req and hands it to the backend for env.
func (s *Setter) Apply(env desktop.Environment, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	b, err := s.Backend(env)
	if err != nil {
		return err
	}
	return b.SetKeymap(req)
}
