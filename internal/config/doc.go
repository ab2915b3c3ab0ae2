// Package config loads, normalizes, and validates the stepvault TOML
// configuration.
//
// Configuration is explicit state passed into each component; there are no
// module-level settings singletons. Load resolves the config path (flag
// value, then ~/.config/stepvault/config.toml, then ./stepvault.toml),
// decodes over Default(), expands ~-prefixed paths, and validates the
// result before anything else runs.
package config
