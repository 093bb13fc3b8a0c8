// Package rules classifies files found in the synchronized folder and
// suggests where they should be linked.
//
// Rules are glob patterns matched against a file's base name, evaluated in
// order; the first matching rule wins:
//
//	.vimrc    exact file name
//	.bash*    any file whose name starts with .bash
//
// A matching rule suggests the link path dir/<file name>, where dir defaults
// to `~`. Files that match no rule get no suggestion.
//
// # Source folder configuration
//
// The synchronized folder may contain a .droplink.toml file:
//
//	ignore = ["*.swp", "archive/*"]
//
//	[[rules]]
//	pattern = ".gitconfig"
//	dir = "~"
//
// Its rules are evaluated before the global rules and its ignore patterns are
// added to the global ones.
package rules
