// Package config handles loading and saving the runetab configuration file.
//
// # Overview
//
// The config file carries persistent defaults for the command line: the
// column format, colour handling, theme, decoder chunk sizes and the table
// switches. Every field can be overridden by a flag.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/runetab/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/runetab/config.toml
//   - theme: default
//   - color: auto
//   - stream_chunk: 4 bytes per read when streaming
//   - buffer_chunk: 4096 bytes per read when buffering
//   - format: empty, meaning the built-in column set
//
// # TOML Format
//
//	format = ["offset", "number", "char", "name"]
//	theme = "nightfox"
//	color = "auto"
//	stream_chunk = 4
//	buffer_chunk = 4096
//	decimal = false
//	names = false
//	rigid = false
//	merge = false
//	oneline = false
//
// All fields are optional. Unknown keys are ignored. Values are not checked
// against the known columns, themes or colour modes here; the caller does
// that so a bad value is reported the same way as a bad flag.
//
// # Path Expansion
//
//   - Absolute paths: Used as-is
//   - Tilde paths: Expanded to the home directory
//   - Relative paths: Converted to absolute based on current directory
//
// # Error Handling
//
//   - Missing file: Not an error, returns defaults
//   - Invalid TOML: Returns a "parse config" error
//   - Unreadable file: Returns an "open config" or "read config" error
//
// Save creates the parent directory and writes the normalized values, so a
// saved file always loads back to the same Config.
package config
