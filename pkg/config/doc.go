// Package config handles gencisco's own settings and the device profile
// tables.
//
// Settings are layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml and embedded/profiles.toml)
//  2. the user file, $XDG_CONFIG_HOME/gencisco/config.toml (or config.yaml)
//  3. GENCISCO_* environment variables (GENCISCO_HEADER_WIDTH -> header.width)
//  4. explicit overrides passed by the command line
//
// Profile tables merge key by key, so a user file can replace the boolean
// options of one profile without restating the rest of it:
//
//	[profiles.router]
//	bool_keys = ["no-domain-lookup", "preempt"]
package config
