package graphio_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/graphio"
	"github.com/katalvlaran/apsp/johnson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// ---------- text edge list ----------

func TestReadEdgeList_Valid(t *testing.T) {
	t.Parallel()

	in := "4 4\n0 1 -5\n1 2 2\n2 3 3\n0 3 10\n"
	got, err := graphio.ReadEdgeList(strings.NewReader(in), nil)
	require.NoError(t, err)

	assert.Equal(t, 4, got.Graph.VertexCount())
	assert.Equal(t, graphio.Stats{Declared: 4, Added: 4}, got.Stats)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: -5}, {From: 0, To: 3, Weight: 10},
		{From: 1, To: 2, Weight: 2}, {From: 2, To: 3, Weight: 3},
	}, got.Graph.Edges())
	assert.Empty(t, got.Name)
}

func TestReadEdgeList_TokensIgnoreLineBreaks(t *testing.T) {
	t.Parallel()

	got, err := graphio.ReadEdgeList(strings.NewReader("2\t1 0\n\n 1   7 trailing"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Graph.EdgeCount())
}

func TestReadEdgeList_SkipsInvalidVertices(t *testing.T) {
	t.Parallel()

	logger, buf := bufferLogger()
	in := "3 5\n0 1 1\n0 3 1\n-1 2 4\n1 2 1\n2 0 99999999999\n"
	got, err := graphio.ReadEdgeList(strings.NewReader(in), logger)
	require.NoError(t, err)

	assert.Equal(t, graphio.Stats{Declared: 5, Added: 2, Skipped: 3}, got.Stats)
	assert.Equal(t, 2, got.Graph.EdgeCount())
	assert.Equal(t, 2, strings.Count(buf.String(), "invalid vertex, skipping"))
	assert.Contains(t, buf.String(), "weight out of range, skipping")
}

func TestReadEdgeList_HugeIntegersSkipEdge(t *testing.T) {
	t.Parallel()

	logger, buf := bufferLogger()
	in := "2 4\n0 1 1\n99999999999999999999 1 1\n1 -99999999999999999999 1\n1 0 99999999999999999999\n"
	got, err := graphio.ReadEdgeList(strings.NewReader(in), logger)
	require.NoError(t, err)

	assert.Equal(t, graphio.Stats{Declared: 4, Added: 1, Skipped: 3}, got.Stats)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}}, got.Graph.Edges())
	assert.Equal(t, 2, strings.Count(buf.String(), "invalid vertex, skipping"))
	assert.Contains(t, buf.String(), "weight out of range, skipping")
}

func TestReadEdgeList_Malformed(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":          "",
		"missing E":      "3",
		"letters":        "3 x",
		"short edge":     "3 2\n0 1 1\n1 2",
		"bad weight":     "2 1\n0 1 1.5",
		"bad source":     "2 1\n0.5 1 1",
		"word target":    "2 1\n0 one 1",
		"negative V":     "-1 0",
		"negative E":     "2 -3",
		"too many verts": fmt.Sprintf("%d 0", graphio.MaxVertices+1),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.ReadEdgeList(strings.NewReader(in), nil)
			require.ErrorIs(t, err, graphio.ErrMalformedInput)
		})
	}
}

// ---------- HCL ----------

const sampleHCL = `
graph "reweighting" {
  vertices = 4

  edge {
    from   = 0
    to     = 1
    weight = -5
  }
  edge {
    from   = 1
    to     = 2
    weight = 2
  }
  edge {
    from   = 2
    to     = 3
    weight = 3
  }
  edge {
    from   = 0
    to     = 3
    weight = 10
  }
  edge {
    from   = 7
    to     = 0
    weight = 1
  }
}
`

func TestParseHCL_Valid(t *testing.T) {
	t.Parallel()

	logger, buf := bufferLogger()
	got, err := graphio.ParseHCL([]byte(sampleHCL), "sample.hcl", logger)
	require.NoError(t, err)

	assert.Equal(t, "reweighting", got.Name)
	assert.Equal(t, 4, got.Graph.VertexCount())
	assert.Equal(t, graphio.Stats{Declared: 5, Added: 4, Skipped: 1}, got.Stats)
	assert.Contains(t, buf.String(), "invalid vertex, skipping")

	res, err := johnson.Johnson(got.Graph)
	require.NoError(t, err)
	d, _ := res.Distance(0, 3)
	assert.Equal(t, core.Finite(0), d)
}

func TestParseHCL_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"syntax":       `graph "g" { vertices = `,
		"no graph":     `vertices = 3`,
		"two graphs":   `graph "a" { vertices = 1 }` + "\n" + `graph "b" { vertices = 1 }`,
		"missing attr": "graph \"g\" {\n  edge {\n    from = 0\n    to = 0\n    weight = 0\n  }\n}",
		"fractional":   "graph \"g\" {\n  vertices = 2\n  edge {\n    from = 0.5\n    to = 1\n    weight = 0\n  }\n}",
		"negative":     `graph "g" { vertices = -2 }`,
		"weight frac":  "graph \"g\" {\n  vertices = 2\n  edge {\n    from = 0\n    to = 1\n    weight = 1.5\n  }\n}",
		"weight text":  "graph \"g\" {\n  vertices = 2\n  edge {\n    from = 0\n    to = 1\n    weight = \"heavy\"\n  }\n}",
		"from text":    "graph \"g\" {\n  vertices = 2\n  edge {\n    from = \"zero\"\n    to = 1\n    weight = 0\n  }\n}",
		"weight null":  "graph \"g\" {\n  vertices = 2\n  edge {\n    from = 0\n    to = 1\n    weight = null\n  }\n}",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.ParseHCL([]byte(src), name+".hcl", nil)
			require.ErrorIs(t, err, graphio.ErrMalformedInput)
		})
	}
}

func TestParseHCL_WeightValues(t *testing.T) {
	t.Parallel()

	src := `
graph "w" {
  vertices = 3
  edge {
    from   = 0
    to     = 1
    weight = "-4"
  }
  edge {
    from   = 1
    to     = 2
    weight = 1e30
  }
  edge {
    from   = 0
    to     = 2
    weight = 2147483647
  }
}
`
	logger, buf := bufferLogger()
	got, err := graphio.ParseHCL([]byte(src), "w.hcl", logger)
	require.NoError(t, err)
	assert.Equal(t, graphio.Stats{Declared: 3, Added: 2, Skipped: 1}, got.Stats)
	assert.Contains(t, buf.String(), "weight out of range, skipping")

	edges := got.Graph.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, int64(-4), edges[0].Weight)
	assert.Equal(t, core.MaxAbsWeight, edges[1].Weight)
}

func TestParseHCL_HugeIndexSkipsEdge(t *testing.T) {
	t.Parallel()

	src := `
graph "big" {
  vertices = 2
  edge {
    from   = 0
    to     = 1
    weight = 4
  }
  edge {
    from   = 99999999999999999999
    to     = 1
    weight = 1
  }
  edge {
    from   = 1
    to     = "-99999999999999999999"
    weight = 1
  }
}
`
	logger, buf := bufferLogger()
	got, err := graphio.ParseHCL([]byte(src), "big.hcl", logger)
	require.NoError(t, err)

	assert.Equal(t, graphio.Stats{Declared: 3, Added: 1, Skipped: 2}, got.Stats)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 4}}, got.Graph.Edges())
	assert.Equal(t, 2, strings.Count(buf.String(), "invalid vertex, skipping"))
}

func TestLoadHCL_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleHCL), 0o600))

	got, err := graphio.LoadHCL(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Stats.Added)

	_, err = graphio.LoadHCL(filepath.Join(t.TempDir(), "absent.hcl"), nil)
	require.ErrorIs(t, err, graphio.ErrMalformedInput)
}

// ---------- formats ----------

func TestFormat(t *testing.T) {
	t.Parallel()

	f, err := graphio.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatAuto, f)

	f, err = graphio.ParseFormat("HCL")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatHCL, f)

	_, err = graphio.ParseFormat("yaml")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)

	assert.Equal(t, graphio.FormatHCL, graphio.FormatAuto.Resolve("dir/g.HCL"))
	assert.Equal(t, graphio.FormatText, graphio.FormatAuto.Resolve("g.txt"))
	assert.Equal(t, graphio.FormatText, graphio.FormatAuto.Resolve(""))
	assert.Equal(t, graphio.FormatHCL, graphio.FormatHCL.Resolve("g.txt"))
}

// ---------- report ----------

func cells(vals ...string) string {
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "%7s ", v)
	}
	b.WriteString("\n")

	return b.String()
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	g := core.MustGraph(4)
	require.NoError(t, g.AddEdge(0, 1, -5))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))
	require.NoError(t, g.AddEdge(0, 3, 10))
	res, err := johnson.Johnson(g)
	require.NoError(t, err)

	matrix := "Distance matrix:\n" +
		cells("0", "-5", "-3", "0") +
		cells("INF", "0", "2", "5") +
		cells("INF", "INF", "0", "3") +
		cells("INF", "INF", "INF", "0")
	assert.Equal(t, "      0      -5 ", cells("0", "-5")[:16])

	var out bytes.Buffer
	require.NoError(t, graphio.WriteReport(&out, res, graphio.ReportOptions{}))
	assert.Equal(t, matrix, out.String())

	out.Reset()
	require.NoError(t, graphio.WriteReport(&out, res, graphio.ReportOptions{Paths: true}))
	want := matrix + "\nPaths:\n" +
		"0 -> 1 (cost -5)\n" +
		"0 -> 1 -> 2 (cost -3)\n" +
		"0 -> 1 -> 2 -> 3 (cost 0)\n" +
		"1 -> 2 (cost 2)\n" +
		"1 -> 2 -> 3 (cost 5)\n" +
		"2 -> 3 (cost 3)\n"
	assert.Equal(t, want, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReport_Errors(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, graphio.WriteReport(&bytes.Buffer{}, nil, graphio.ReportOptions{}), graphio.ErrNilResult)

	res, err := johnson.Johnson(core.MustGraph(2))
	require.NoError(t, err)
	require.Error(t, graphio.WriteReport(failingWriter{}, res, graphio.ReportOptions{}))
}
