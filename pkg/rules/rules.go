package rules

import (
	"path/filepath"

	"github.com/arthur-debert/droplink/pkg/config"
	"github.com/arthur-debert/droplink/pkg/paths"
)

// Ruleset is an ordered list of naming rules plus ignore patterns
type Ruleset struct {
	rules  []config.Rule
	ignore []string
}

// New creates a Ruleset. Rules are evaluated in the order given.
func New(rules []config.Rule, ignore []string) *Ruleset {
	return &Ruleset{rules: rules, ignore: ignore}
}

// FromSettings builds the global Ruleset from the loaded configuration
func FromSettings(s config.Settings) *Ruleset {
	return New(s.Rules, s.Ignore)
}

// Match returns the first rule matching name
func (r *Ruleset) Match(name string) (config.Rule, bool) {
	for _, rule := range r.rules {
		if matched, _ := filepath.Match(rule.Pattern, name); matched {
			return rule, true
		}
	}
	return config.Rule{}, false
}

// Suggest returns the suggested link path for a file name, or "" when no
// rule matches.
func (r *Ruleset) Suggest(name string) string {
	rule, ok := r.Match(name)
	if !ok {
		return ""
	}
	return paths.JoinHome(rule.Dir, name)
}

// Ignored reports whether a file should be left out of the mapping file.
// Patterns are tried against both the base name and the path relative to the
// source folder.
func (r *Ruleset) Ignored(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	name := filepath.Base(relPath)
	for _, pattern := range r.ignore {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, relPath); matched {
			return true
		}
	}
	return false
}

// With returns a new Ruleset with extra rules evaluated first and extra
// ignore patterns added.
func (r *Ruleset) With(rules []config.Rule, ignore []string) *Ruleset {
	merged := make([]config.Rule, 0, len(rules)+len(r.rules))
	merged = append(merged, rules...)
	merged = append(merged, r.rules...)

	ignores := make([]string, 0, len(ignore)+len(r.ignore))
	ignores = append(ignores, r.ignore...)
	ignores = append(ignores, ignore...)

	return New(merged, ignores)
}

// Len returns the number of naming rules
func (r *Ruleset) Len() int {
	return len(r.rules)
}
