package system

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// UnknownExitCode is reported when a process ended without an exit status,
// for example because it was killed by a signal.
const UnknownExitCode = -1

// CommandRunner defines an interface for running external programs.
// Standard output of Run and RunVisible is always discarded.
type CommandRunner interface {
	// Run executes a command and captures its standard error into the returned error.
	Run(name string, args ...string) error
	// RunVisible executes a command with standard error forwarded to the user.
	RunVisible(name string, args ...string) error
	// Output executes a command and returns its standard output.
	Output(name string, args ...string) (string, error)
}

// SpawnError is returned when a program could not be launched at all.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute `%s`: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError is returned when a program ran but did not exit with status 0.
type ExitError struct {
	Program string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s returned exit code %d", e.Program, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// ExecCommandRunner executes commands as child processes.
type ExecCommandRunner struct {
	// Stderr receives the error stream of RunVisible. Defaults to os.Stderr.
	Stderr io.Writer
	log    *zap.SugaredLogger
}

// NewCommandRunner returns a default command runner implementation.
func NewCommandRunner(log *zap.SugaredLogger) *ExecCommandRunner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ExecCommandRunner{Stderr: os.Stderr, log: log}
}

// Run executes a command, discarding stdout and capturing stderr.
func (r *ExecCommandRunner) Run(name string, args ...string) error {
	var stderr bytes.Buffer
	err := r.run(&stderr, name, args...)
	return withStderr(err, &stderr)
}

// RunVisible executes a command, discarding stdout and forwarding stderr.
func (r *ExecCommandRunner) RunVisible(name string, args ...string) error {
	w := r.Stderr
	if w == nil {
		w = os.Stderr
	}
	return r.run(w, name, args...)
}

// Output executes a command and returns its standard output.
func (r *ExecCommandRunner) Output(name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	r.log.Debugw("running command", "command", ShellCommand(name, args...))

	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := classify(cmd.Run(), name, args); err != nil {
		return "", withStderr(err, &stderr)
	}
	return stdout.String(), nil
}

func (r *ExecCommandRunner) run(stderr io.Writer, name string, args ...string) error {
	r.log.Debugw("running command", "command", ShellCommand(name, args...))

	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = stderr
	return classify(cmd.Run(), name, args)
}

// classify maps the result of exec.Cmd.Run onto SpawnError and ExitError.
func classify(err error, name string, args []string) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the process was terminated by a signal
		return &ExitError{Program: name, Code: exitErr.ExitCode()}
	}

	return &SpawnError{Command: ShellCommand(name, args...), Err: err}
}

// withStderr attaches captured standard error to an ExitError.
func withStderr(err error, stderr *bytes.Buffer) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		exitErr.Stderr = strings.TrimSpace(stderr.String())
	}
	return err
}

// ShellCommand renders a command line for diagnostics only. Arguments
// containing a space are wrapped in double quotes.
func ShellCommand(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, arg := range args {
		if strings.Contains(arg, " ") {
			arg = `"` + arg + `"`
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// CommandExists checks if a command is available in PATH
func CommandExists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
