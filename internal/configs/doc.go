// Package configs manages user configuration for remold.
//
// Configuration lives in TOML format at ~/.config/remold/config.toml (or
// the platform equivalent of the user config directory):
//
//	key_directory = "/home/me/.local/share/remold/keys"
//	key_bits = 4096
//	repair_base64_padding = true
//
// Every key is optional; a missing file means all defaults. Keys default
// to $XDG_DATA_HOME/remold/keys.
package configs
