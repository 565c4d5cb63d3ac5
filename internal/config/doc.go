// Package config loads and merges sheetdiff configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (SHEETDIFF_SERVER_URL, SHEETDIFF_FORMAT, SHEETDIFF_TOKEN, etc.)
//  3. Config file ($XDG_CONFIG_HOME/sheetdiff/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key.
package config
