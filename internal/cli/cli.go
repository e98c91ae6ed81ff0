package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/apsp/dijkstra"
	"github.com/katalvlaran/apsp/graphio"
)

// Exit codes reported through ExitError.
const (
	ExitFailure       = 1
	ExitUsage         = 2
	ExitNegativeCycle = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command-line configuration.
type Config struct {
	Input     string // path, "" or "-" for stdin
	Format    graphio.Format
	Strategy  dijkstra.Strategy
	Paths     bool
	Verify    bool
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("johnson", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
johnson - all-pairs shortest paths with negative edge weights.

Usage:
  johnson [options] [GRAPH_FILE]

Arguments:
  GRAPH_FILE
    Edge list ("V E" then "u v w" triples) or .hcl graph file.
    Reads standard input when omitted or "-".

Exit codes:
  0 success, 1 failure, 2 usage error, 3 negative cycle.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the graph file; '-' or empty reads stdin.")
	formatFlag := flagSet.String("format", "auto", "Input format. Options: 'text', 'hcl' or 'auto' (by extension).")
	strategyFlag := flagSet.String("strategy", "linear", "Dijkstra vertex selection. Options: 'linear' or 'heap'.")
	pathsFlag := flagSet.Bool("paths", false, "Print every reachable shortest path after the matrix.")
	verifyFlag := flagSet.Bool("verify", false, "Cross-check the result with Floyd-Warshall and BFS reachability.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	input := *inputFlag
	switch {
	case flagSet.NArg() > 1:
		return nil, false, &ExitError{Code: ExitUsage, Message: "at most one GRAPH_FILE may be given"}
	case flagSet.NArg() == 1 && input != "":
		return nil, false, &ExitError{Code: ExitUsage, Message: "give the graph either with -input or as GRAPH_FILE, not both"}
	case flagSet.NArg() == 1:
		input = flagSet.Arg(0)
	}

	format, err := graphio.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid format: must be 'text', 'hcl' or 'auto'"}
	}
	strategy, err := dijkstra.ParseStrategy(strings.ToLower(*strategyFlag))
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid strategy: must be 'linear' or 'heap'"}
	}

	logFormat, err := parseLogFormat(*logFormatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	logLevel, err := parseLogLevel(*logLevelFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return &Config{
		Input:     input,
		Format:    format,
		Strategy:  strategy,
		Paths:     *pathsFlag,
		Verify:    *verifyFlag,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}, false, nil
}
