package desktop

import "testing"

func TestStringParseRoundTrip(t *testing.T) {
	for _, e := range All() {
		got, err := Parse(e.String())
		if err != nil {
			t.Errorf("Parse(%q) error = %v", e.String(), err)
			continue
		}
		if got != e {
			t.Errorf("Parse(%q) = %v, want %v", e.String(), got, e)
		}
	}
}

func TestAllExcludesUnknown(t *testing.T) {
	for _, e := range All() {
		if e == Unknown {
			t.Fatal("All() contains Unknown")
		}
	}
	if len(All()) != int(endEnvironment)-1 {
		t.Errorf("len(All()) = %d, want %d", len(All()), int(endEnvironment)-1)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Environment
		wantErr bool
	}{
		{"lower case", "gnome", Gnome, false},
		{"xdg alias", "X-Cinnamon", Cinnamon, false},
		{"plasma alias", "plasma", Kde, false},
		{"whitespace", "  sway ", Sway, false},
		{"cosmic name", "Cosmic", Cosmic, false},
		{"cosmic epoch", "cosmicepoch", CosmicEpoch, false},
		{"unknown", "fvwm", Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		want   Environment
		wantOK bool
	}{
		{"ubuntu gnome", map[string]string{"XDG_CURRENT_DESKTOP": "ubuntu:GNOME"}, Gnome, true},
		{"kde", map[string]string{"XDG_CURRENT_DESKTOP": "KDE"}, Kde, true},
		{"cosmic epoch", map[string]string{"XDG_CURRENT_DESKTOP": "COSMIC"}, CosmicEpoch, true},
		{"hyprland socket", map[string]string{"HYPRLAND_INSTANCE_SIGNATURE": "abc"}, Hyprland, true},
		{"sway socket", map[string]string{"SWAYSOCK": "/run/user/1000/sway-ipc.sock"}, Sway, true},
		{"session path", map[string]string{"DESKTOP_SESSION": "/usr/share/xsessions/plasma"}, Kde, true},
		{"xfce session", map[string]string{"XDG_SESSION_DESKTOP": "xfce"}, Xfce, true},
		{"nothing", map[string]string{}, Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detect(func(k string) string { return tt.env[k] })
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("detect() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
