// Package commands provides high-level command implementations for droplink.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the generator, editor and linker.
//
// Each command is implemented in its own subdirectory:
//   - setup/ - generate, edit and apply the mapping file
//   - add/   - reserved, not implemented
package commands

import (
	"context"

	"github.com/arthur-debert/droplink/pkg/commands/add"
	"github.com/arthur-debert/droplink/pkg/commands/setup"
)

// Setup generates the mapping file when needed, opens it in the editor and
// links every entry.
type SetupOptions = setup.Options

func Setup(ctx context.Context, opts SetupOptions) (*setup.Result, error) {
	return setup.Run(ctx, opts)
}

// Add is reserved for moving a file into the synchronized folder.
type AddOptions = add.Options

func Add(opts AddOptions) error {
	return add.Run(opts)
}
