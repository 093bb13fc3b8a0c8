// Package setup implements `droplink setup`: make sure a mapping file exists,
// let the user edit it, then link everything it lists.
package setup

import (
	"context"
	"os"

	"github.com/arthur-debert/droplink/pkg/config"
	"github.com/arthur-debert/droplink/pkg/editor"
	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/filesystem"
	"github.com/arthur-debert/droplink/pkg/generator"
	"github.com/arthur-debert/droplink/pkg/linker"
	"github.com/arthur-debert/droplink/pkg/logging"
)

// EditFunc opens path in the editor command and blocks until it exits
type EditFunc func(ctx context.Context, command, path string) error

// Options holds options for the setup command
type Options struct {
	Settings config.Settings

	// Fresh regenerates the mapping file even if it exists
	Fresh bool
	// NoSuggestions generates the mapping file without link suggestions
	NoSuggestions bool
	// SkipEdit does not open the editor
	SkipEdit bool
	// DryRun reports what linking would do without changing anything
	DryRun bool

	// FS defaults to the OS filesystem
	FS filesystem.FS
	// Edit defaults to editor.Edit
	Edit EditFunc
}

// Result holds what setup did
type Result struct {
	// Generated is nil when an existing mapping file was reused
	Generated *generator.Result
	Report    *linker.Report
}

// EnsureMappingFile generates the mapping file if it is missing or fresh is
// set. It returns nil when the existing file was kept.
func EnsureMappingFile(fs filesystem.FS, settings config.Settings, fresh, noSuggestions bool) (*generator.Result, error) {
	logger := logging.GetLogger("commands.setup")

	if !fresh {
		_, err := fs.Stat(settings.MappingFile)
		if err == nil {
			logger.Debug().Str("mappingFile", settings.MappingFile).Msg("Using existing mapping file")
			return nil, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect mapping file %s", settings.MappingFile)
		}
	}

	logger.Info().
		Str("mappingFile", settings.MappingFile).
		Bool("fresh", fresh).
		Bool("noSuggestions", noSuggestions).
		Msg("Generating mapping file")

	return generator.Generate(fs, settings, generator.Options{NoSuggestions: noSuggestions})
}

// Run ensures the mapping file, opens it in the editor and processes it
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.setup")
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	edit := opts.Edit
	if edit == nil {
		edit = editor.Edit
	}
	settings := opts.Settings

	generated, err := EnsureMappingFile(fs, settings, opts.Fresh, opts.NoSuggestions)
	if err != nil {
		return nil, err
	}
	result := &Result{Generated: generated}

	if !opts.SkipEdit {
		logger.Debug().Str("editor", settings.Editor).Msg("Opening mapping file in editor")
		if err := edit(ctx, settings.Editor, settings.MappingFile); err != nil {
			return result, err
		}
	}

	report, err := linker.New(fs, settings, linker.Options{DryRun: opts.DryRun}).Process(settings.MappingFile)
	result.Report = report
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("linked", report.Count(linker.StatusLinked)).
		Int("backedUp", report.Count(linker.StatusBackedUp)).
		Int("errors", report.Count(linker.StatusError)).
		Msg("Setup complete")

	return result, nil
}
