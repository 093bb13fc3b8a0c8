package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/logging"
	"github.com/arthur-debert/droplink/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "DROPLINK_"

// DefaultEditor is used when neither config nor environment name an editor
const DefaultEditor = "vim"

// LoadOptions controls where Load reads configuration from
type LoadOptions struct {
	// ConfigFile is an explicit config file. When set it must exist.
	ConfigFile string

	// Overrides are applied last, typically from command-line flags.
	// Empty string values are ignored.
	Overrides map[string]interface{}
}

// Load builds Settings from defaults, the user config file, the environment
// and overrides.
func Load(opts LoadOptions) (Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	configPath := opts.ConfigFile
	explicit := configPath != ""
	if !explicit {
		configPath = paths.DefaultConfigFile()
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return Settings{}, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load config from %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	} else if explicit {
		return Settings{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"config file %s not found", configPath)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	overrides := make(map[string]interface{})
	for key, value := range opts.Overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		overrides[key] = value
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := resolve(&s); err != nil {
		return Settings{}, err
	}

	logger.Debug().
		Str("sourceDir", s.SourceDir).
		Str("mappingFile", s.MappingFile).
		Str("homeDir", s.HomeDir).
		Int("rules", len(s.Rules)).
		Msg("Configuration loaded")

	return s, nil
}

// resolve fills derived values and expands `~` in path settings
func resolve(s *Settings) error {
	if s.HomeDir == "" {
		home, err := paths.HomeDir()
		if err != nil {
			return err
		}
		s.HomeDir = home
	}
	s.HomeDir = filepath.Clean(s.HomeDir)

	if s.MappingFile == "" {
		s.MappingFile = paths.DefaultMappingFile()
	}
	s.MappingFile = paths.Expand(s.MappingFile, s.HomeDir)
	s.SourceDir = paths.Expand(s.SourceDir, s.HomeDir)

	if s.Editor == "" {
		s.Editor = editorFromEnv()
	}

	if s.BackupSuffix == "" {
		return errors.New(errors.ErrConfigLoad, "backup_suffix must not be empty")
	}
	for _, rule := range s.Rules {
		if _, err := filepath.Match(rule.Pattern, ""); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "invalid rule pattern %q", rule.Pattern)
		}
	}
	return nil
}

func editorFromEnv() string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if editor := os.Getenv(name); editor != "" {
			return editor
		}
	}
	return DefaultEditor
}
