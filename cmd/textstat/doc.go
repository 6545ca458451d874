// Package main hosts the textstat CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into aggregation
// passes (count, stats), file merges, run history queries, and configuration
// scaffolding. It centralizes configuration resolution, logger construction,
// and run recording so subcommands only describe their inputs and output.
//
// Keep this package lean: add new behavior to the internal packages first,
// then surface it through a dedicated command or flag here.
package main
