package droplink

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/droplink/internal/version"
	"github.com/arthur-debert/droplink/pkg/commands"
	"github.com/arthur-debert/droplink/pkg/config"
	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/logging"
	"github.com/arthur-debert/droplink/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by all subcommands
type globalOptions struct {
	verbosity   int
	configFile  string
	sourceDir   string
	mappingFile string
	format      string
}

// loadSettings builds Settings with flag values layered on top
func (g *globalOptions) loadSettings() (config.Settings, error) {
	settings, err := config.Load(config.LoadOptions{
		ConfigFile: g.configFile,
		Overrides: map[string]interface{}{
			"source_dir":   g.sourceDir,
			"mapping_file": g.mappingFile,
		},
	})
	if err != nil {
		return config.Settings{}, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return settings, nil
}

// renderer returns the output renderer selected by --format
func (g *globalOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// renderedError marks an error that has already been written to the user
type renderedError struct {
	err error
}

func (e *renderedError) Error() string { return e.err.Error() }

func (e *renderedError) Unwrap() error { return e.err }

// IsRendered reports whether err was already written by a command's renderer
func IsRendered(err error) bool {
	var rendered *renderedError
	return stderrors.As(err, &rendered)
}

// fail writes err to stderr in the --format output and marks it as rendered.
// Errors are returned untouched when no renderer can be built for the format.
func (g *globalOptions) fail(cmd *cobra.Command, err error) error {
	format, parseErr := ui.ParseFormat(g.format)
	if parseErr != nil {
		return err
	}
	renderer, rendererErr := ui.NewRenderer(format, cmd.ErrOrStderr())
	if rendererErr != nil {
		return err
	}
	if renderErr := renderer.RenderError(err); renderErr != nil {
		return err
	}
	return &renderedError{err: err}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "droplink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidArgument, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.sourceDir, "source", "", MsgFlagSource)
	rootCmd.PersistentFlags().StringVar(&opts.mappingFile, "mapping", "", MsgFlagMapping)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	// Only setup and add are commands
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSetupCmd(opts))
	rootCmd.AddCommand(newAddCmd(opts))

	return rootCmd
}

func newSetupCmd(global *globalOptions) *cobra.Command {
	var opts commands.SetupOptions

	cmd := &cobra.Command{
		Use:     "setup",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		Example: MsgSetupExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := global.renderer(cmd)
			if err != nil {
				return err
			}
			settings, err := global.loadSettings()
			if err != nil {
				return global.fail(cmd, err)
			}

			log.Info().
				Str("source_dir", settings.SourceDir).
				Str("mapping_file", settings.MappingFile).
				Bool("fresh", opts.Fresh).
				Bool("dry_run", opts.DryRun).
				Msg("Running setup")

			opts.Settings = settings
			result, err := commands.Setup(cmd.Context(), opts)
			if result != nil {
				var renderErr error
				if result.Generated != nil {
					renderErr = renderer.RenderGenerated(result.Generated)
				} else {
					renderErr = renderer.RenderMessage(fmt.Sprintf(MsgUsingExisting, settings.MappingFile))
				}
				if renderErr != nil {
					return renderErr
				}
			}
			if err != nil {
				return global.fail(cmd, err)
			}
			return renderer.RenderReport(result.Report)
		},
	}

	cmd.Flags().BoolVarP(&opts.Fresh, "fresh", "f", false, MsgFlagFresh)
	cmd.Flags().BoolVar(&opts.NoSuggestions, "no-load-suggestions", false, MsgFlagNoSuggestions)
	cmd.Flags().BoolVar(&opts.NoSuggestions, "nls", false, MsgFlagNoSuggestions)
	_ = cmd.Flags().MarkHidden("nls")
	cmd.Flags().BoolVar(&opts.SkipEdit, "no-edit", false, MsgFlagNoEdit)
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}

func newAddCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: MsgAddShort,
		Long:  MsgAddLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commands.Add(commands.AddOptions{File: args[0]}); err != nil {
				return global.fail(cmd, err)
			}
			return nil
		},
	}
}
