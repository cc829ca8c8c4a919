package keymap

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/derdilla/setwlkbmap/internal/system"
	"go.uber.org/zap"
)

const (
	hyprctl = "hyprctl"

	hyprlandBlockBegin = "# --- Begin setwlkeymap generated ---"
	hyprlandBlockEnd   = "# --- End setwlkeymap generated ---"
)

// BlockMode selects how the generated block is written to hyprland.conf.
type BlockMode string

const (
	// BlockAppend adds a new block at the end of the file on every call.
	// Hyprland applies assignments in file order, so the last block wins.
	BlockAppend BlockMode = "append"
	// BlockReplace removes earlier generated blocks before adding the new one.
	BlockReplace BlockMode = "replace"
)

// ParseBlockMode validates a block mode name. Empty selects BlockAppend.
func ParseBlockMode(s string) (BlockMode, error) {
	switch BlockMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", BlockAppend:
		return BlockAppend, nil
	case BlockReplace:
		return BlockReplace, nil
	}
	return "", fmt.Errorf("unknown hyprland block mode %q (want %q or %q)", s, BlockAppend, BlockReplace)
}

// DefaultHyprlandConfig returns $XDG_CONFIG_HOME/hypr/hyprland.conf.
func DefaultHyprlandConfig() string {
	return filepath.Join(xdg.ConfigHome, "hypr", "hyprland.conf")
}

// Hyprland writes an input block to the end of hyprland.conf and reloads
// the compositor.
//
// Finding the effective kb_layout through the chain of sourced files is
// not reliable, so the generated block is placed last where it overrides
// everything before it.
type Hyprland struct {
	runner system.CommandRunner
	path   string
	mode   BlockMode
	log    *zap.SugaredLogger
}

func NewHyprland(runner system.CommandRunner, path string, mode BlockMode, log *zap.SugaredLogger) *Hyprland {
	if path == "" {
		path = DefaultHyprlandConfig()
	}
	if mode == "" {
		mode = BlockAppend
	}
	return &Hyprland{runner: runner, path: path, mode: mode, log: log}
}

func (h *Hyprland) SetKeymap(req Request) error {
	fragment := hyprlandFragment(req)
	if fragment == "" {
		return nil
	}

	h.log.Debugw("writing hyprland input block", "path", h.path, "mode", h.mode)

	var err error
	switch h.mode {
	case BlockReplace:
		err = replaceHyprlandBlock(h.path, fragment)
	default:
		err = appendHyprlandBlock(h.path, fragment)
	}
	if err != nil {
		return err
	}

	// reload on change can be disabled in the config
	return h.runner.Run(hyprctl, "reload")
}

func hyprlandFragment(req Request) string {
	var b strings.Builder
	if req.HasLayout() {
		fmt.Fprintf(&b, "input:kb_layout = %s\n", req.Layout)
	}
	if req.HasVariant() {
		fmt.Fprintf(&b, "input:kb_variant = %s\n", req.Variant)
	}
	return b.String()
}

func hyprlandBlock(fragment string) string {
	return hyprlandBlockBegin + "\n" + fragment + hyprlandBlockEnd + "\n"
}

// appendHyprlandBlock appends to an existing file. A missing file is an
// error: it means hyprland reads its config from somewhere else.
func appendHyprlandBlock(path, fragment string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}

	if _, err := file.WriteString("\n" + hyprlandBlock(fragment)); err != nil {
		file.Close()
		return &ConfigWriteError{Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}
	return nil
}

func replaceHyprlandBlock(path, fragment string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}

	kept := strings.TrimRight(stripHyprlandBlocks(string(content)), "\n")
	updated := hyprlandBlock(fragment)
	if kept != "" {
		updated = kept + "\n\n" + updated
	}

	if err := writeFileAtomic(path, []byte(updated), info.Mode().Perm()); err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}
	return nil
}

// stripHyprlandBlocks removes every complete generated block together with
// the blank line written in front of it. A begin marker without a matching
// end marker is left untouched.
func stripHyprlandBlocks(content string) string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	var out []string
	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != hyprlandBlockBegin {
			out = append(out, lines[i])
			continue
		}

		end := -1
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == hyprlandBlockEnd {
				end = j
				break
			}
		}
		if end < 0 {
			out = append(out, lines[i])
			continue
		}

		if n := len(out); n > 0 && strings.TrimSpace(out[n-1]) == "" {
			out = out[:n-1]
		}
		i = end
	}

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

// writeFileAtomic replaces path through a temporary file in the same
// directory so readers never see a half written file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Cleanup on error

	if err := tmpFile.Chmod(perm); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
