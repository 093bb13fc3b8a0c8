package droplink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/mapping"
	"github.com/arthur-debert/droplink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func executeSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_NoCommand(t *testing.T) {
	testutil.NewEnvironment(t)

	out, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgErrNoCommand)
	assert.Contains(t, out, "setup")
}

func TestRoot_UnknownCommands(t *testing.T) {
	testutil.NewEnvironment(t)

	for _, name := range []string{"deploy", "completion", "help"} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown command")
		})
	}
}

func TestAdd_NotImplemented(t *testing.T) {
	testutil.NewEnvironment(t)

	_, err := execute(t, "add", "/tmp/.zshrc")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
}

func TestAdd_RequiresExactlyOneArg(t *testing.T) {
	testutil.NewEnvironment(t)

	_, err := execute(t, "add")
	assert.Error(t, err)

	_, err = execute(t, "add", "a", "b")
	assert.Error(t, err)
}

func TestSetup_EndToEnd(t *testing.T) {
	env := testutil.NewEnvironment(t)
	t.Setenv("DROPLINK_EDITOR", "true")
	vimrc := env.SourceFile(".vimrc", "v")
	bashrc := env.SourceFile(".bashrc", "b")
	env.SourceFile("notes.txt", "n")
	env.HomeFile(".bashrc", "original")

	out, err := execute(t, "setup", "--format", "text")
	require.NoError(t, err)

	mappingFile := filepath.Join(env.ConfigDir, "links.conf")
	content := testutil.ReadFile(t, mappingFile)
	assert.Contains(t, content, mapping.Header)
	assert.Contains(t, content, "~/.vimrc   =>   ~/Dropbox/.vimrc")
	assert.Contains(t, content, "   =>   ~/Dropbox/notes.txt")

	testutil.AssertSymlinkTo(t, env.HomePath(".vimrc"), vimrc)
	testutil.AssertSymlinkTo(t, env.HomePath(".bashrc"), bashrc)
	testutil.AssertContent(t, env.HomePath(".bashrc.conf_bak"), "original")
	testutil.AssertNotExists(t, env.HomePath("notes.txt"))

	assert.Contains(t, out, "Wrote 3 entries")
	assert.Contains(t, out, "2 links created, 1 backup made, and 1 entry skipped.")

	// A second run reuses the mapping file and changes nothing.
	out, err = execute(t, "setup", "--format", "text")
	require.NoError(t, err)
	assert.NotContains(t, out, "Wrote")
	assert.Contains(t, out, "Using existing mapping file "+mappingFile)
	assert.Contains(t, out, "3 entries skipped.")
	testutil.AssertNotExists(t, env.HomePath(".bashrc.conf_bak.conf_bak"))
}

func TestSetup_EditorFailureExitsWithError(t *testing.T) {
	env := testutil.NewEnvironment(t)
	t.Setenv("DROPLINK_EDITOR", "false")
	env.SourceFile(".vimrc", "v")

	_, err := execute(t, "setup", "--format", "text")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditorFailed))
	testutil.AssertNotExists(t, env.HomePath(".vimrc"))
}

func TestSetup_EditorFailureRendersJSON(t *testing.T) {
	env := testutil.NewEnvironment(t)
	t.Setenv("DROPLINK_EDITOR", "false")
	env.SourceFile(".vimrc", "v")

	_, stderr, err := executeSplit(t, "setup", "--format", "json")
	require.Error(t, err)
	assert.True(t, IsRendered(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditorFailed))

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(stderr), &body))
	assert.Equal(t, string(errors.ErrEditorFailed), body["code"])
	assert.Contains(t, body["error"], "editor")
}

func TestAdd_ErrorRendersJSON(t *testing.T) {
	testutil.NewEnvironment(t)

	stdout, stderr, err := executeSplit(t, "add", "/tmp/.zshrc", "--format", "json")
	require.Error(t, err)
	assert.True(t, IsRendered(err))
	assert.Empty(t, stdout)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(stderr), &body))
	assert.Equal(t, string(errors.ErrNotImplemented), body["code"])
}

func TestAdd_ErrorRendersText(t *testing.T) {
	testutil.NewEnvironment(t)

	_, stderr, err := executeSplit(t, "add", "/tmp/.zshrc", "--format", "text")
	require.Error(t, err)
	assert.True(t, IsRendered(err))
	assert.Contains(t, stderr, "Error: ")
	assert.Contains(t, stderr, string(errors.ErrNotImplemented))
}

func TestSetup_BadFormatIsNotRendered(t *testing.T) {
	testutil.NewEnvironment(t)

	_, stderr, err := executeSplit(t, "setup", "--no-edit", "--format", "yaml")
	require.Error(t, err)
	assert.False(t, IsRendered(err))
	assert.Empty(t, stderr)
}

func TestSetup_FreshWithoutSuggestions(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")
	mappingFile := env.WriteMapping("~/.vimrc => ~/Dropbox/.vimrc\n")

	_, err := execute(t, "setup", "-f", "--nls", "--no-edit", "--format", "text")
	require.NoError(t, err)

	testutil.AssertContent(t, mappingFile, mapping.Header+"   =>   ~/Dropbox/.vimrc\n")
	testutil.AssertNotExists(t, env.HomePath(".vimrc"))
}

func TestSetup_LongNoSuggestionsFlag(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")

	_, err := execute(t, "setup", "--no-load-suggestions", "--no-edit", "--format", "text")
	require.NoError(t, err)

	assert.NotContains(t, testutil.ReadFile(t, filepath.Join(env.ConfigDir, "links.conf")), "~/.vimrc ")
}

func TestSetup_FlagOverrides(t *testing.T) {
	env := testutil.NewEnvironment(t)
	other := testutil.CreateDir(t, env.Root, "Sync")
	target := testutil.CreateFile(t, other, ".vimrc", "v")
	mappingFile := filepath.Join(env.Root, "custom", "map.conf")

	_, err := execute(t, "setup", "--source", other, "--mapping", mappingFile, "--no-edit", "--format", "text")
	require.NoError(t, err)

	_, err = os.Stat(mappingFile)
	require.NoError(t, err)
	testutil.AssertSymlinkTo(t, env.HomePath(".vimrc"), target)
}

func TestSetup_DryRunJSON(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")

	out, err := execute(t, "setup", "--no-edit", "--dry-run", "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"dryRun": true`)
	assert.Contains(t, out, `"status": "linked"`)
	testutil.AssertNotExists(t, env.HomePath(".vimrc"))
}

func TestSetup_BadFormat(t *testing.T) {
	testutil.NewEnvironment(t)

	_, err := execute(t, "setup", "--no-edit", "--format", "yaml")
	assert.Error(t, err)
}

func TestSetup_MissingConfigFile(t *testing.T) {
	env := testutil.NewEnvironment(t)

	_, err := execute(t, "setup", "--no-edit", "--config", filepath.Join(env.Root, "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestFormatBold_NotTerminal(t *testing.T) {
	orig := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = orig })
	stdoutIsTerminal = func() bool { return false }

	assert.Equal(t, "USAGE:", formatBoldUpper("usage:"))
}
