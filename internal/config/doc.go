// Package config manages persistent user settings stored at
// ~/.forgex/config.yaml, with FORGEX_* environment variable overrides.
package config
