// Package config holds the option store the selection engine reads from.
//
// Only two options are consumed by the engine: the tab stop width used for
// indentation measurement, and the set of extra characters counted as word
// characters by word classification. Values can come from a TOML settings
// file, a JSON settings document, or environment variables, and a file
// watcher can keep a store in sync with its settings file.
package config
