// Package config loads the CLI's runtime settings from, in increasing
// precedence: built-in defaults, the environment (plus an optional .env
// file), an optional JSON file, and command-line flags.
package config
