// Package cmd provides the command-line interface for loggrep.
//
// This package implements a Cobra-based CLI. The root command runs the log
// inspection pipeline directly; two housekeeping subcommands exist alongside:
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// Command Structure:
//
//	loggrep [flags] <namespace>        # Inspect container logs in a namespace
//	loggrep version                    # Shows version information
//	loggrep self-update                # Updates to latest release
//	loggrep help                       # Shows help information
//
// Filtering is selected with one of the mode flags (-a, -e, -w, -h) or a
// custom pattern (-s). The -h shorthand belongs to --http for compatibility
// with the original tool; help remains available as --help. When several mode
// flags are given the last one on the command line wins, matching the
// original tool's behavior.
//
// Flag Examples:
//
//	loggrep -e demo                    # Lines matching "error", with context
//	loggrep -a -f report.md demo       # error|warn|fatal, written to report.md
//	loggrep -s 'timeout' demo          # Custom pattern
//	loggrep -e --rg-args '-C 5' demo   # Wider context windows
//	loggrep demo                       # Full logs, no filtering
package cmd
