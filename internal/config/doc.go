// Package config loads, normalizes, and validates textstat configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours XDG_DATA_HOME for the data
// directory. Every knob the CLI needs (text decoding, merge policy, worker
// count, history, logging) lives on Config so commands resolve settings in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical policy names, and validation errors that name the
// offending TOML key.
package config
