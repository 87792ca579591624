// Package config loads and merges application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The three sources are merged in that order with mergo; the first non-zero
// value for a field wins. GetStructuredConfig is the single entry point used
// by all binaries.
package config
