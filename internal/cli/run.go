package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/apsp/bfs"
	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/graphio"
	"github.com/katalvlaran/apsp/johnson"
	"github.com/katalvlaran/apsp/matrix"
)

// errVerifyMismatch reports a disagreement found by -verify.
var errVerifyMismatch = errors.New("verification failed")

// Run loads the graph named by cfg, solves all pairs, and writes the report
// to stdout. Logs go to stderr. A negative cycle yields an ExitError with
// ExitNegativeCycle; any other failure an ExitError with ExitFailure.
func Run(cfg *Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	loaded, err := load(cfg, stdin, logger)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	g := loaded.Graph
	stats := g.Stats()
	logger.Info("graph loaded",
		"name", loaded.Name,
		"vertices", stats.VertexCount,
		"edges", stats.EdgeCount,
		"skipped", loaded.Stats.Skipped,
		"negative_edges", stats.NegativeEdges,
	)

	res, err := johnson.Johnson(g,
		johnson.WithLogger(logger),
		johnson.WithStrategy(cfg.Strategy),
	)
	if errors.Is(err, johnson.ErrNegativeCycle) {
		return &ExitError{Code: ExitNegativeCycle, Message: "negative cycle detected; shortest paths are undefined"}
	}
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	if cfg.Verify {
		if err := verify(g, res); err != nil {
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
		logger.Info("verification passed", "checks", "floyd-warshall,reachability")
	}

	if err := graphio.WriteReport(stdout, res, graphio.ReportOptions{Paths: cfg.Paths}); err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("writing report: %v", err)}
	}

	return nil
}

// load opens the configured input and dispatches on its format.
func load(cfg *Config, stdin io.Reader, logger *slog.Logger) (*graphio.Loaded, error) {
	fromStdin := cfg.Input == "" || cfg.Input == "-"
	name := cfg.Input
	if fromStdin {
		name = "<stdin>"
	}

	switch cfg.Format.Resolve(cfg.Input) {
	case graphio.FormatHCL:
		if !fromStdin {
			return graphio.LoadHCL(cfg.Input, logger)
		}
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return graphio.ParseHCL(src, name, logger)
	default:
		if fromStdin {
			return graphio.ReadEdgeList(stdin, logger)
		}
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		return graphio.ReadEdgeList(f, logger)
	}
}

// verify checks res against two independent computations: Floyd-Warshall
// distances, and BFS reachability for the placement of unreachable entries.
func verify(g *core.Graph, res *johnson.Result) error {
	fw, err := matrix.FloydWarshall(g)
	if err != nil {
		return fmt.Errorf("%w: floyd-warshall: %w", errVerifyMismatch, err)
	}
	i, j, differ, err := res.Dist.Diff(fw)
	if err != nil {
		return fmt.Errorf("%w: %w", errVerifyMismatch, err)
	}
	if differ {
		want, _ := fw.At(i, j)
		got, _ := res.Dist.At(i, j)
		return fmt.Errorf("%w: distance (%d,%d) = %s, floyd-warshall says %s", errVerifyMismatch, i, j, got, want)
	}

	for s := 0; s < g.VertexCount(); s++ {
		reach, err := bfs.Reachable(g, s)
		if err != nil {
			return fmt.Errorf("%w: %w", errVerifyMismatch, err)
		}
		row, _ := res.Dist.Row(s)
		for v, ok := range reach {
			if ok != row[v].IsFinite() {
				return fmt.Errorf("%w: (%d,%d) reachable=%t but distance %s", errVerifyMismatch, s, v, ok, row[v])
			}
		}
	}

	return nil
}
