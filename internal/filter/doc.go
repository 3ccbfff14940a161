// Package filter implements the search side of the log pipeline.
//
// A Spec is resolved once from the command line and never mutated afterwards.
// The Engine applies the Spec to raw log text with search-tool semantics:
// smart-case matching, multiline patterns (dot matches newline), and merged
// context windows around each match. Passthrough arguments supplied via
// --rg-args can override the defaults (literal matching, inverted matching,
// context sizes), mirroring how the equivalent ripgrep flags behave.
package filter
