package rules

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/droplink/pkg/config"
	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/filesystem"
	"github.com/arthur-debert/droplink/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

// SourceConfigFile is the optional rules file at the root of the source folder
const SourceConfigFile = ".droplink.toml"

// SourceConfig represents the contents of a source folder's .droplink.toml
type SourceConfig struct {
	Ignore []string      `toml:"ignore"`
	Rules  []config.Rule `toml:"rules"`
}

// LoadSourceConfig reads sourceDir/.droplink.toml. A missing file yields an
// empty config.
func LoadSourceConfig(fs filesystem.FS, sourceDir string) (*SourceConfig, error) {
	logger := logging.GetLogger("rules.source")
	configPath := filepath.Join(sourceDir, SourceConfigFile)

	data, err := fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &SourceConfig{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", configPath)
	}

	var cfg SourceConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", configPath)
	}

	for _, rule := range cfg.Rules {
		if _, err := filepath.Match(rule.Pattern, ""); err != nil || rule.Pattern == "" {
			return nil, errors.Newf(errors.ErrConfigParse, "invalid rule pattern %q in %s", rule.Pattern, configPath)
		}
	}

	logger.Debug().
		Str("path", configPath).
		Int("rules", len(cfg.Rules)).
		Int("ignore", len(cfg.Ignore)).
		Msg("Loaded source folder config")

	return &cfg, nil
}

// ForSource returns the effective Ruleset for a source folder: its own
// .droplink.toml rules take precedence over the global ones.
func ForSource(fs filesystem.FS, global *Ruleset, sourceDir string) (*Ruleset, error) {
	cfg, err := LoadSourceConfig(fs, sourceDir)
	if err != nil {
		return nil, err
	}
	return global.With(cfg.Rules, append(cfg.Ignore, SourceConfigFile)), nil
}
