package graphio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/apsp/core"
)

// ErrMalformedInput indicates input that cannot be read as a graph at all:
// a bad token, a premature end, a negative count or an undecodable HCL body.
// Edges that merely reference unknown vertices are not malformed; they are
// skipped and counted.
var ErrMalformedInput = errors.New("graphio: malformed input")

// ErrUnknownFormat indicates a format name other than text, hcl or auto.
var ErrUnknownFormat = errors.New("graphio: unknown format")

// MaxVertices bounds the declared vertex count of any input; the all-pairs
// matrices alone need V² cells.
const MaxVertices = 1 << 16

// Format selects an input reader.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatHCL  Format = "hcl"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatText, FormatHCL:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Resolve turns FormatAuto into a concrete format using the file extension
// of path: ".hcl" selects FormatHCL, anything else (stdin included) FormatText.
func (f Format) Resolve(path string) Format {
	if f != FormatAuto {
		return f
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return FormatHCL
	}

	return FormatText
}

// Stats counts what a reader did with the declared edges.
type Stats struct {
	Declared int // edges present in the input
	Added    int // edges accepted by the graph store
	Skipped  int // edges rejected (invalid vertex, weight out of range, loop)
}

// Loaded is a graph read from some input, with its name (HCL label, empty for
// text input) and the edge statistics.
type Loaded struct {
	Name  string
	Graph *core.Graph
	Stats Stats
}

// addEdge forwards one edge to the store; rejections are logged and counted,
// never fatal.
func addEdge(g *core.Graph, st *Stats, log *slog.Logger, u, v int, w int64) {
	st.Declared++
	err := g.AddEdge(u, v, w)
	switch {
	case err == nil:
		st.Added++
		return
	case errors.Is(err, core.ErrInvalidVertex):
		log.Warn("invalid vertex, skipping", "from", u, "to", v, "weight", w)
	case errors.Is(err, core.ErrWeightOutOfRange):
		log.Warn("weight out of range, skipping", "from", u, "to", v, "weight", w, "max", core.MaxAbsWeight)
	default:
		log.Warn("edge rejected, skipping", "from", u, "to", v, "weight", w, "error", err)
	}
	st.Skipped++
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
