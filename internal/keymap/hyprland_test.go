package keymap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writeHyprlandConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprland.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

func TestHyprlandAppendsBlockAndReloads(t *testing.T) {
	path := writeHyprlandConfig(t, "monitor=,preferred,auto,1\n")
	runner := &fakeCommandRunner{}

	h := NewHyprland(runner, path, BlockAppend, zap.NewNop().Sugar())
	if err := h.SetKeymap(Request{Layout: "de", Variant: "nodeadkeys"}); err != nil {
		t.Fatalf("SetKeymap() error = %v", err)
	}

	want := "monitor=,preferred,auto,1\n" +
		"\n# --- Begin setwlkeymap generated ---\n" +
		"input:kb_layout = de\n" +
		"input:kb_variant = nodeadkeys\n" +
		"# --- End setwlkeymap generated ---\n"
	if got := readFile(t, path); got != want {
		t.Errorf("config =\n%s\nwant\n%s", got, want)
	}
	if err := runner.assertCommands("hyprctl reload"); err != nil {
		t.Error(err)
	}
}

func TestHyprlandAppendAccumulates(t *testing.T) {
	path := writeHyprlandConfig(t, "")
	h := NewHyprland(&fakeCommandRunner{}, path, BlockAppend, zap.NewNop().Sugar())

	for _, layout := range []string{"us", "de"} {
		if err := h.SetKeymap(Request{Layout: layout}); err != nil {
			t.Fatalf("SetKeymap(%s) error = %v", layout, err)
		}
	}

	got := readFile(t, path)
	if n := strings.Count(got, hyprlandBlockBegin); n != 2 {
		t.Errorf("found %d blocks, want 2", n)
	}
	if strings.LastIndex(got, "input:kb_layout = de") < strings.LastIndex(got, "input:kb_layout = us") {
		t.Error("latest block is not last in the file")
	}
}

func TestHyprlandReplaceKeepsSingleBlock(t *testing.T) {
	path := writeHyprlandConfig(t, "general {\n}\n")
	h := NewHyprland(&fakeCommandRunner{}, path, BlockReplace, zap.NewNop().Sugar())

	for _, layout := range []string{"us", "de", "fr"} {
		if err := h.SetKeymap(Request{Layout: layout}); err != nil {
			t.Fatalf("SetKeymap(%s) error = %v", layout, err)
		}
	}

	want := "general {\n}\n" +
		"\n# --- Begin setwlkeymap generated ---\n" +
		"input:kb_layout = fr\n" +
		"# --- End setwlkeymap generated ---\n"
	if got := readFile(t, path); got != want {
		t.Errorf("config =\n%s\nwant\n%s", got, want)
	}
}

func TestStripHyprlandBlocksKeepsUnterminated(t *testing.T) {
	content := "a\n\n" + hyprlandBlockBegin + "\ninput:kb_layout = us\n" + hyprlandBlockEnd + "\nb\n" +
		hyprlandBlockBegin + "\nc\n"
	want := "a\nb\n" + hyprlandBlockBegin + "\nc\n"
	if got := stripHyprlandBlocks(content); got != want {
		t.Errorf("stripHyprlandBlocks() = %q, want %q", got, want)
	}
}

func TestHyprlandEmptyRequestIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.conf")
	runner := &fakeCommandRunner{}

	if err := NewHyprland(runner, path, BlockAppend, zap.NewNop().Sugar()).SetKeymap(Request{}); err != nil {
		t.Fatalf("SetKeymap() error = %v", err)
	}
	if len(runner.commands) != 0 {
		t.Errorf("ran %q, want no commands", runner.commands)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config file was created")
	}
}

func TestHyprlandMissingConfig(t *testing.T) {
	for _, mode := range []BlockMode{BlockAppend, BlockReplace} {
		t.Run(string(mode), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hypr", "hyprland.conf")
			runner := &fakeCommandRunner{}

			err := NewHyprland(runner, path, mode, zap.NewNop().Sugar()).SetKeymap(Request{Layout: "de"})
			var writeErr *ConfigWriteError
			if !errors.As(err, &writeErr) {
				t.Fatalf("SetKeymap() error = %v, want *ConfigWriteError", err)
			}
			if writeErr.Path != path {
				t.Errorf("Path = %q, want %q", writeErr.Path, path)
			}
			if len(runner.commands) != 0 {
				t.Errorf("ran %q, want no reload after failed write", runner.commands)
			}
		})
	}
}

func TestParseBlockMode(t *testing.T) {
	tests := []struct {
		in      string
		want    BlockMode
		wantErr bool
	}{
		{"", BlockAppend, false},
		{"append", BlockAppend, false},
		{"Replace", BlockReplace, false},
		{"dedupe", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBlockMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseBlockMode(%q) = (%q, %v), want (%q, wantErr %v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestDefaultHyprlandConfig(t *testing.T) {
	if !strings.HasSuffix(DefaultHyprlandConfig(), filepath.Join("hypr", "hyprland.conf")) {
		t.Errorf("DefaultHyprlandConfig() = %q", DefaultHyprlandConfig())
	}
}
