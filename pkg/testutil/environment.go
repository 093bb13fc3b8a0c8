package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/droplink/pkg/config"
	"github.com/arthur-debert/droplink/pkg/paths"
)

// Environment is an isolated home directory with a synchronized folder inside
type Environment struct {
	t         *testing.T
	Root      string
	Home      string
	SourceDir string
	ConfigDir string
}

// NewEnvironment creates home, home/Dropbox and a config dir under a temp
// dir and points DROPLINK_HOME and DROPLINK_CONFIG_DIR at them.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	// Resolve symlinked temp roots (macOS /var -> /private/var) so link
	// destinations compare equal.
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	env := &Environment{
		t:         t,
		Root:      root,
		Home:      CreateDir(t, root, "home"),
		ConfigDir: CreateDir(t, root, "config"),
	}
	env.SourceDir = CreateDir(t, env.Home, "Dropbox")

	t.Setenv(paths.EnvHome, env.Home)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	return env
}

// Settings returns settings matching the environment with default rules
func (env *Environment) Settings() config.Settings {
	return config.Settings{
		SourceDir:    env.SourceDir,
		MappingFile:  filepath.Join(env.ConfigDir, paths.MappingFileName),
		HomeDir:      env.Home,
		Editor:       "true",
		BackupSuffix: ".conf_bak",
		Ignore:       []string{".DS_Store"},
		Rules: []config.Rule{
			{Pattern: ".vimrc", Dir: "~"},
			{Pattern: ".bash*", Dir: "~"},
		},
	}
}

// SourceFile creates a file in the synchronized folder
func (env *Environment) SourceFile(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.SourceDir, name, content)
}

// HomeFile creates a file in the home directory
func (env *Environment) HomeFile(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.Home, name, content)
}

// HomePath returns the absolute path of name inside home
func (env *Environment) HomePath(name string) string {
	return filepath.Join(env.Home, name)
}

// WriteMapping writes a mapping file and returns its path
func (env *Environment) WriteMapping(content string) string {
	env.t.Helper()
	path := filepath.Join(env.ConfigDir, paths.MappingFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write mapping file: %v", err)
	}
	return path
}
