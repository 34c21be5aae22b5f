// Package cli implements the command-line interface for confab.
//
// The cli package provides the Cobra-based CLI. The root command runs one
// aggregation pass and writes the snapshot; the search subcommand queries an
// existing snapshot without touching the network, with text/JSON output and
// sorting by date, name, or domain; export renders a snapshot as iCalendar.
package cli
