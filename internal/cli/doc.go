// Package cli implements the johnson command: flag parsing into a validated
// Config, logger construction, and the load → solve → verify → report
// pipeline with exit codes carried by ExitError.
package cli
