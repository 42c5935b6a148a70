// Package config loads, normalizes, and validates logcursor configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/logcursor/config.toml or a
// project-local logcursor.toml. Reader buffer sizing, follow cadence, the
// follower lock directory, and diagnostic logging are all configured here.
package config
