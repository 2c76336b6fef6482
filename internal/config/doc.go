// Package config loads the application configuration from environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults, merges the sources by priority, and validates the result.
package config
