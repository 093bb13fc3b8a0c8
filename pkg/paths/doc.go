// Package paths provides home-directory and XDG path handling for droplink.
//
// Mapping files refer to the home directory with the `~` shorthand. During
// generation absolute paths are contracted to `~` for readability, and during
// processing the shorthand is expanded back against an explicit home
// directory:
//
//	home, _ := paths.HomeDir()
//	paths.Expand("~/.vimrc", home)               // /home/user/.vimrc
//	paths.Contract("/home/user/Dropbox/x", home) // ~/Dropbox/x
//
// Only the current user's `~` is understood; `~other` forms are left as-is.
//
// # Environment Variables
//
//   - DROPLINK_CONFIG_DIR: overrides $XDG_CONFIG_HOME/droplink
//   - DROPLINK_HOME: overrides the home directory used for `~` expansion
package paths
