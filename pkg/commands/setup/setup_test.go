package setup_test

import (
	"context"
	"os"
	"testing"

	"github.com/arthur-debert/droplink/pkg/commands/setup"
	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/filesystem"
	"github.com/arthur-debert/droplink/pkg/linker"
	"github.com/arthur-debert/droplink/pkg/mapping"
	"github.com/arthur-debert/droplink/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type editCall struct {
	command string
	path    string
}

func recordingEditor(calls *[]editCall, err error) setup.EditFunc {
	return func(_ context.Context, command, path string) error {
		*calls = append(*calls, editCall{command: command, path: path})
		return err
	}
}

func TestEnsureMappingFile_GeneratesWhenMissing(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")
	settings := env.Settings()

	generated, err := setup.EnsureMappingFile(filesystem.NewOS(), settings, false, false)
	require.NoError(t, err)
	require.NotNil(t, generated)
	assert.Len(t, generated.Entries, 1)

	content := testutil.ReadFile(t, settings.MappingFile)
	assert.Contains(t, content, mapping.Header)
	assert.Contains(t, content, "~/.vimrc   =>   ~/Dropbox/.vimrc")
}

func TestEnsureMappingFile_KeepsExisting(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")
	path := env.WriteMapping("# my edits\n")

	generated, err := setup.EnsureMappingFile(filesystem.NewOS(), env.Settings(), false, false)
	require.NoError(t, err)
	assert.Nil(t, generated)
	testutil.AssertContent(t, path, "# my edits\n")
}

func TestEnsureMappingFile_FreshOverwrites(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")
	path := env.WriteMapping("# my edits\n")

	generated, err := setup.EnsureMappingFile(filesystem.NewOS(), env.Settings(), true, true)
	require.NoError(t, err)
	require.NotNil(t, generated)
	testutil.AssertContent(t, path, mapping.Header+"   =>   ~/Dropbox/.vimrc\n")
}

func TestRun_GeneratesEditsAndLinks(t *testing.T) {
	env := testutil.NewEnvironment(t)
	vimrc := env.SourceFile(".vimrc", "v")
	settings := env.Settings()

	var calls []editCall
	result, err := setup.Run(context.Background(), setup.Options{
		Settings: settings,
		Edit:     recordingEditor(&calls, nil),
	})
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, editCall{command: "true", path: settings.MappingFile}, calls[0])
	assert.NotNil(t, result.Generated)
	require.NotNil(t, result.Report)
	assert.Equal(t, 1, result.Report.Count(linker.StatusLinked))
	testutil.AssertSymlinkTo(t, env.HomePath(".vimrc"), vimrc)
}

func TestRun_UsesEditedMapping(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")
	notes := env.SourceFile("notes.txt", "n")
	settings := env.Settings()

	// The "user" points notes.txt at ~/notes while editing.
	edit := func(_ context.Context, _, path string) error {
		return os.WriteFile(path, []byte("~/notes => ~/Dropbox/notes.txt\n"), 0644)
	}

	result, err := setup.Run(context.Background(), setup.Options{Settings: settings, Edit: edit})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Report.Count(linker.StatusLinked))
	testutil.AssertSymlinkTo(t, env.HomePath("notes"), notes)
	testutil.AssertNotExists(t, env.HomePath(".vimrc"))
}

func TestRun_EditorFailureStopsBeforeLinking(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")

	var calls []editCall
	editErr := errors.New(errors.ErrEditorFailed, "editor exited with status 1")
	result, err := setup.Run(context.Background(), setup.Options{
		Settings: env.Settings(),
		Edit:     recordingEditor(&calls, editErr),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditorFailed))
	assert.Nil(t, result.Report)
	testutil.AssertNotExists(t, env.HomePath(".vimrc"))
}

func TestRun_RealEditorFailure(t *testing.T) {
	env := testutil.NewEnvironment(t)
	settings := env.Settings()
	settings.Editor = "false"

	_, err := setup.Run(context.Background(), setup.Options{Settings: settings})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditorFailed))
}

func TestRun_SkipEditAndDryRun(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.SourceFile(".vimrc", "v")

	var calls []editCall
	result, err := setup.Run(context.Background(), setup.Options{
		Settings: env.Settings(),
		SkipEdit: true,
		DryRun:   true,
		Edit:     recordingEditor(&calls, nil),
	})
	require.NoError(t, err)

	assert.Empty(t, calls)
	assert.True(t, result.Report.DryRun)
	assert.Equal(t, 1, result.Report.Count(linker.StatusLinked))
	testutil.AssertNotExists(t, env.HomePath(".vimrc"))
}

func TestRun_PerLineErrorsAreNotFatal(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteMapping("garbage\n~/.x => ~/Dropbox/missing\n")

	result, err := setup.Run(context.Background(), setup.Options{Settings: env.Settings(), SkipEdit: true})
	require.NoError(t, err)
	assert.Nil(t, result.Generated)
	assert.Equal(t, 2, result.Report.Count(linker.StatusError))
}
