// Package add reserves `droplink add`, which will move a file into the
// synchronized folder and link it back. It currently does nothing.
package add

import (
	"strings"

	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/logging"
)

// Options holds options for the add command
type Options struct {
	File string
}

// Run validates the argument and reports that add is not implemented
func Run(opts Options) error {
	logger := logging.GetLogger("commands.add")

	if strings.TrimSpace(opts.File) == "" {
		return errors.New(errors.ErrInvalidArgument, "add requires a file")
	}

	logger.Debug().Str("file", opts.File).Msg("add requested")
	return errors.Newf(errors.ErrNotImplemented, "add is not implemented yet, %s was left untouched", opts.File).
		WithDetail("file", opts.File)
}
