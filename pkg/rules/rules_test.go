package rules

import (
	"testing"

	"github.com/arthur-debert/droplink/pkg/config"
	"github.com/stretchr/testify/assert"
)

func defaultRuleset() *Ruleset {
	return New([]config.Rule{
		{Pattern: ".vimrc", Dir: "~"},
		{Pattern: ".bash*", Dir: "~"},
	}, []string{".DS_Store"})
}

func TestSuggest(t *testing.T) {
	rs := defaultRuleset()

	tests := []struct {
		name string
		file string
		want string
	}{
		{"vimrc exact", ".vimrc", "~/.vimrc"},
		{"bashrc prefix", ".bashrc", "~/.bashrc"},
		{"bash_profile prefix", ".bash_profile", "~/.bash_profile"},
		{"bash alone", ".bash", "~/.bash"},
		{"vimrc lookalike is not exact", ".vimrc.local", ""},
		{"bash not at start", "my.bashrc", ""},
		{"no rule", "notes.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rs.Suggest(tt.file))
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	rs := New([]config.Rule{
		{Pattern: ".bashrc", Dir: "~/.config/bash"},
		{Pattern: ".bash*", Dir: "~"},
	}, nil)

	assert.Equal(t, "~/.config/bash/.bashrc", rs.Suggest(".bashrc"))
	assert.Equal(t, "~/.bash_aliases", rs.Suggest(".bash_aliases"))

	rule, ok := rs.Match(".bashrc")
	assert.True(t, ok)
	assert.Equal(t, "~/.config/bash", rule.Dir)
}

func TestEmptyDirDefaultsToHome(t *testing.T) {
	rs := New([]config.Rule{{Pattern: ".gitconfig"}}, nil)
	assert.Equal(t, "~/.gitconfig", rs.Suggest(".gitconfig"))
}

func TestIgnored(t *testing.T) {
	rs := New(nil, []string{".DS_Store", "*.swp", "archive/*"})

	assert.True(t, rs.Ignored(".DS_Store"))
	assert.True(t, rs.Ignored("nested/.DS_Store"))
	assert.True(t, rs.Ignored("vim/.vimrc.swp"))
	assert.True(t, rs.Ignored("archive/old.conf"))
	assert.False(t, rs.Ignored("archive/deeper/old.conf"))
	assert.False(t, rs.Ignored(".vimrc"))
}

func TestWith(t *testing.T) {
	base := defaultRuleset()
	extended := base.With([]config.Rule{{Pattern: ".vimrc", Dir: "~/vim"}}, []string{"*.bak"})

	assert.Equal(t, 3, extended.Len())
	assert.Equal(t, "~/vim/.vimrc", extended.Suggest(".vimrc"))
	assert.True(t, extended.Ignored("x.bak"))
	assert.True(t, extended.Ignored(".DS_Store"))

	// base is unchanged
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, "~/.vimrc", base.Suggest(".vimrc"))
	assert.False(t, base.Ignored("x.bak"))
}

func TestFromSettings(t *testing.T) {
	rs := FromSettings(config.Settings{
		Rules:  []config.Rule{{Pattern: "*.zsh", Dir: "~/.zsh"}},
		Ignore: []string{"*.tmp"},
	})
	assert.Equal(t, "~/.zsh/aliases.zsh", rs.Suggest("aliases.zsh"))
	assert.True(t, rs.Ignored("a.tmp"))
}
