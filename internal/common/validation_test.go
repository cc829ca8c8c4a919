package common

import "testing"

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"absolute", "/home/user/.config/hypr/hyprland.conf", false},
		{"root", "/", false},
		{"relative", "hypr/hyprland.conf", true},
		{"tilde is not expanded", "~/.config/hypr/hyprland.conf", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"value", "de", false},
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tab", "\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotEmpty() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateKeymapToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"layout", "de", false},
		{"variant with underscore", "alt_intl", false},
		{"variant with digits", "dvorak-l", false},
		{"empty is allowed", "", false},
		{"space", "de us", true},
		{"newline", "de\ninput:kb_layout = us", true},
		{"single quote", "de'", true},
		{"double quote", `"de"`, true},
		{"comment", "de#x", true},
		{"parenthesis", "de(nodeadkeys)", true},
		{"comma", "de,us", true},
		{"control", "de\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeymapToken(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKeymapToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
		})
	}
}
