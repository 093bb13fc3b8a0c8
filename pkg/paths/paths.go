package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/droplink/pkg/errors"
	homedir "github.com/mitchellh/go-homedir"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for droplink
	EnvConfigDir = "DROPLINK_CONFIG_DIR"

	// EnvHome overrides the home directory used for `~` expansion
	EnvHome = "DROPLINK_HOME"
)

const (
	// HomeShorthand is the prefix that stands for the home directory in mapping files
	HomeShorthand = "~"

	// AppDirName is the directory name for droplink-specific files
	AppDirName = "droplink"

	// MappingFileName is the default name of the mapping file
	MappingFileName = "links.conf"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// DefaultSourceDir is the default synchronized folder
	DefaultSourceDir = "~/Dropbox"
)

// homedirDir is overridden in tests
var homedirDir = homedir.Dir

// HomeDir resolves the home directory used for `~` expansion.
func HomeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return filepath.Clean(home), nil
	}
	home, err := homedirDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to resolve home directory")
	}
	return home, nil
}

// ConfigDir returns the droplink configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultMappingFile returns the default mapping file location.
func DefaultMappingFile() string {
	return filepath.Join(ConfigDir(), MappingFileName)
}

// DefaultConfigFile returns the default user configuration file location.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// Expand replaces a leading `~` with home. `~` must be the whole path or be
// followed by a separator.
func Expand(path, home string) string {
	if path == HomeShorthand {
		return home
	}
	if strings.HasPrefix(path, HomeShorthand+"/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Contract replaces a leading home directory with `~`. Paths that merely
// share a string prefix with home (e.g. /home/user2) are left untouched.
func Contract(path, home string) string {
	if home == "" || home == "/" {
		return path
	}
	home = filepath.Clean(home)
	if path == home {
		return HomeShorthand
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return HomeShorthand + "/" + filepath.ToSlash(path[len(home)+1:])
	}
	return path
}

// JoinHome joins name onto the home shorthand, e.g. "~/.vimrc".
func JoinHome(dir, name string) string {
	if dir == "" || dir == HomeShorthand {
		return HomeShorthand + "/" + name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}
