package keymap

import (
	"errors"
	"testing"

	"github.com/derdilla/setwlkbmap/internal/desktop"
)

func TestApplyIsTotalOverDesktops(t *testing.T) {
	implemented := map[desktop.Environment]bool{
		desktop.Kde:         true,
		desktop.Xfce:        true,
		desktop.Gnome:       true,
		desktop.Sway:        true,
		desktop.Hyprland:    true,
		desktop.Cinnamon:    true,
		desktop.CosmicEpoch: true,
	}

	s := NewSetter(Options{Runner: &fakeCommandRunner{}, HyprlandConfig: "/nonexistent/hyprland.conf"})
	for _, env := range append(desktop.All(), desktop.Unknown) {
		t.Run(env.String(), func(t *testing.T) {
			_, err := s.Backend(env)
			var unimpl *UnimplementedError
			if implemented[env] {
				if err != nil {
					t.Errorf("Backend(%v) error = %v, want backend", env, err)
				}
				return
			}
			if !errors.As(err, &unimpl) {
				t.Fatalf("Backend(%v) error = %v, want *UnimplementedError", env, err)
			}
			if unimpl.Desktop != env {
				t.Errorf("UnimplementedError.Desktop = %v, want %v", unimpl.Desktop, env)
			}
		})
	}
}

func TestApplyRejectsEmptyRequest(t *testing.T) {
	runner := &fakeCommandRunner{}
	s := NewSetter(Options{Runner: runner})

	err := s.Apply(desktop.Sway, Request{})
	if !errors.Is(err, ErrEmptyRequest) {
		t.Fatalf("Apply() error = %v, want ErrEmptyRequest", err)
	}
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("ErrEmptyRequest should wrap ErrInvalidRequest")
	}
	if len(runner.commands) != 0 {
		t.Errorf("ran %q, want no commands", runner.commands)
	}
}

func TestApplyUnimplemented(t *testing.T) {
	s := NewSetter(Options{Runner: &fakeCommandRunner{}})
	err := s.Apply(desktop.Mate, Request{Layout: "de"})

	var unimpl *UnimplementedError
	if !errors.As(err, &unimpl) || unimpl.Desktop != desktop.Mate {
		t.Fatalf("Apply() error = %v, want UnimplementedError for Mate", err)
	}
	if err.Error() != "setting the keymap is not implemented for Mate" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestApplyDispatchesToBackend(t *testing.T) {
	runner := &fakeCommandRunner{}
	s := NewSetter(Options{Runner: runner})

	if err := s.Apply(desktop.Xfce, Request{Layout: "de"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := runner.assertCommands(
		"xfconf-query -c keyboard-layout -p /Default/XkbDisable -s false",
		"xfconf-query -c keyboard-layout -p /Default/XkbLayout -s de",
	); err != nil {
		t.Error(err)
	}
}

func TestCinnamonIsUnsupported(t *testing.T) {
	runner := &fakeCommandRunner{}
	s := NewSetter(Options{Runner: runner})

	err := s.Apply(desktop.Cinnamon, Request{Layout: "de", Variant: "nodeadkeys"})
	var unsupported *UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Apply() error = %v, want *UnsupportedError", err)
	}
	if len(runner.commands) != 0 {
		t.Errorf("ran %q, want no commands", runner.commands)
	}
}

func TestRequestString(t *testing.T) {
	tests := []struct {
		req  Request
		want string
	}{
		{Request{Layout: "de"}, "de"},
		{Request{Layout: "de", Variant: "nodeadkeys"}, "de(nodeadkeys)"},
		{Request{Variant: "dvorak"}, "(dvorak)"},
	}
	for _, tt := range tests {
		if got := tt.req.String(); got != tt.want {
			t.Errorf("Request.String() = %q, want %q", got, tt.want)
		}
	}
}
