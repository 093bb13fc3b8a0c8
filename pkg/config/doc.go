// Package config handles configuration management for droplink.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file ($XDG_CONFIG_HOME/droplink/config.toml)
//  3. DROPLINK_* environment variables
//  4. command-line flag overrides
//
// The result is a Settings value that is passed explicitly to the generator
// and the link processor.
package config
