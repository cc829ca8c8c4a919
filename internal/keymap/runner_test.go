package keymap

import (
	"fmt"
	"strings"

	"github.com/derdilla/setwlkbmap/internal/system"
)

type fakeCommandRunner struct {
	commands    []string
	visible     []bool
	failCommand string
	outputs     map[string]string
}

func (f *fakeCommandRunner) record(visible bool, name string, args ...string) (string, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	f.commands = append(f.commands, cmd)
	f.visible = append(f.visible, visible)
	if f.failCommand != "" && cmd == f.failCommand {
		return "", &system.ExitError{Program: name, Code: 1}
	}
	return f.outputs[cmd], nil
}

func (f *fakeCommandRunner) Run(name string, args ...string) error {
	_, err := f.record(false, name, args...)
	return err
}

func (f *fakeCommandRunner) RunVisible(name string, args ...string) error {
	_, err := f.record(true, name, args...)
	return err
}

func (f *fakeCommandRunner) Output(name string, args ...string) (string, error) {
	return f.record(false, name, args...)
}

func (f *fakeCommandRunner) assertCommands(want ...string) error {
	if len(f.commands) != len(want) {
		return fmt.Errorf("ran %d commands %q, want %d %q", len(f.commands), f.commands, len(want), want)
	}
	for i := range want {
		if f.commands[i] != want[i] {
			return fmt.Errorf("command %d = %q, want %q", i, f.commands[i], want[i])
		}
	}
	return nil
}
