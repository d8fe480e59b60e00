// Package script executes user-supplied shell commands and captures
// their version output.
package script

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Result holds the captured output of a completed script.
type Result struct {
	Stdout   string // Captured standard output
	ExitCode int    // Process exit code (1 if the process could not report one)
}

// Runner runs a shell command string to completion.
// This allows for mocking in tests.
type Runner interface {
	Run(command string) (*Result, error)
}

// ShellRunner runs commands through the system shell so pipes,
// redirection, and environment expansion inside the command string work
// as the user expects.
type ShellRunner struct {
	Shell  string    // Shell binary, defaults to "sh"
	Stderr io.Writer // Where script stderr is streamed, defaults to os.Stderr
}

// Run executes the command via `sh -c`. Standard output is captured in
// memory; standard error streams through unbuffered so diagnostic noise
// from user scripts is visible immediately. The call blocks until the
// subprocess exits; there is no timeout.
//
// A non-nil error means the shell itself could not be launched. A script
// that ran and exited non-zero is not an error: the code is reported in
// the Result.
func (r *ShellRunner) Run(command string) (*Result, error) {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdout bytes.Buffer
	cmd := exec.Command(shell, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by signal, no exit code to report
			code = 1
		}
		return &Result{Stdout: stdout.String(), ExitCode: code}, nil
	}

	return &Result{Stdout: stdout.String(), ExitCode: 0}, nil
}
