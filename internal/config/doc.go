// Package config loads, normalizes, and validates fuzzy-grouper
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files, so the CLI can pick up a preferred
// threshold, filter selection, and cache location without repeating flags
// on every invocation. Always obtain settings through this package so
// downstream code receives sanitized paths and clear validation errors.
package config
