// Package editor opens files in the user's editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/logging"
)

// Editor runs an editor command attached to the given streams
type Editor struct {
	// Command is the editor command line, e.g. "vim" or "code --wait"
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns an Editor attached to the process's terminal
func New(command string) *Editor {
	return &Editor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit opens path and blocks until the editor exits
func (e *Editor) Edit(ctx context.Context, path string) error {
	logger := logging.GetLogger("editor")

	fields := strings.Fields(e.Command)
	if len(fields) == 0 {
		return errors.New(errors.ErrInvalidArgument, "no editor configured")
	}
	name, args := fields[0], append(fields[1:], path)

	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		logger.Warn().Err(err).Str("editor", e.Command).Str("path", path).Msg("Editor failed")
		return errors.Wrapf(err, errors.ErrEditorFailed, "editor %q failed on %s", e.Command, path).
			WithDetail("editor", e.Command).
			WithDetail("path", path)
	}

	logger.Debug().Str("editor", e.Command).Str("path", path).Msg("Editor exited")
	return nil
}

// Edit opens path in command attached to the terminal
func Edit(ctx context.Context, command, path string) error {
	return New(command).Edit(ctx, path)
}
