package droplink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort  = "Link config files from a synchronized folder into place"
	MsgSetupShort = "Generate, edit and apply the mapping file"
	MsgAddShort   = "Move a file into the synchronized folder (not implemented)"

	// Status messages
	MsgUsingExisting = "Using existing mapping file %s"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrLoadConfig = "failed to load configuration: %w"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Path to a config file (default $XDG_CONFIG_HOME/droplink/config.toml)"
	MsgFlagSource        = "Synchronized folder to scan (default ~/Dropbox)"
	MsgFlagMapping       = "Mapping file to generate and apply"
	MsgFlagFormat        = "Output format: auto, term, text or json"
	MsgFlagFresh         = "Regenerate the mapping file even if it exists"
	MsgFlagNoSuggestions = "Generate the mapping file with every link path left blank"
	MsgFlagNoEdit        = "Do not open the mapping file in the editor"
	MsgFlagDryRun        = "Preview changes without executing them"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed msgs/setup-example.txt
	msgSetupExampleRaw string
	MsgSetupExample    = strings.TrimRight(msgSetupExampleRaw, "\n")

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
