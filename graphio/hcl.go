package graphio

import (
	"fmt"
	"math"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/katalvlaran/apsp/core"
)

// hclFile is the top-level structure of a graph file.
type hclFile struct {
	Graphs []*hclGraph `hcl:"graph,block"`
	Remain hcl.Body    `hcl:",remain"`
}

// hclGraph is one labelled graph block.
type hclGraph struct {
	Name     string     `hcl:"name,label"`
	Vertices int        `hcl:"vertices"`
	Edges    []*hclEdge `hcl:"edge,block"`
}

// hclEdge keeps raw values so that integer literals beyond int64 are
// range-checked by the store instead of failing the whole decode.
type hclEdge struct {
	From   cty.Value `hcl:"from"`
	To     cty.Value `hcl:"to"`
	Weight cty.Value `hcl:"weight"`
}

// LoadHCL parses the graph file at path. See ParseHCL for the format.
func LoadHCL(path string, logger *slog.Logger) (*Loaded, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrMalformedInput, path, diags)
	}

	return decodeHCL(f, path, logger)
}

// ParseHCL parses an in-memory graph file; filename only labels diagnostics.
//
//	graph "name" {
//	  vertices = 4
//	  edge {
//	    from   = 0
//	    to     = 1
//	    weight = -5
//	  }
//	}
//
// The file must hold exactly one graph block. Edges naming a vertex outside
// [0, vertices) are logged at Warn and skipped, as in ReadEdgeList.
func ParseHCL(src []byte, filename string, logger *slog.Logger) (*Loaded, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL %s: %w", ErrMalformedInput, filename, diags)
	}

	return decodeHCL(f, filename, logger)
}

func decodeHCL(f *hcl.File, filename string, logger *slog.Logger) (*Loaded, error) {
	log := orDiscard(logger)

	var root hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL %s: %w", ErrMalformedInput, filename, diags)
	}
	if len(root.Graphs) != 1 {
		return nil, fmt.Errorf("%w: %s: want exactly one graph block, got %d", ErrMalformedInput, filename, len(root.Graphs))
	}

	def := root.Graphs[0]
	if def.Vertices < 0 || def.Vertices > MaxVertices {
		return nil, fmt.Errorf("%w: %s: graph %q: vertices=%d not in [0,%d]",
			ErrMalformedInput, filename, def.Name, def.Vertices, MaxVertices)
	}
	g, err := core.NewGraph(def.Vertices, core.WithEdgeCapacity(len(def.Edges)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	log.Debug("decoding HCL graph", "file", filename, "name", def.Name, "vertices", def.Vertices, "edges", len(def.Edges))

	out := &Loaded{Name: def.Name, Graph: g}
	for i, e := range def.Edges {
		u, err := hclIndex("from", e.From)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: graph %q: edge %d: %w", ErrMalformedInput, filename, def.Name, i, err)
		}
		v, err := hclIndex("to", e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: graph %q: edge %d: %w", ErrMalformedInput, filename, def.Name, i, err)
		}
		w, err := hclInt("weight", e.Weight)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: graph %q: edge %d: %w", ErrMalformedInput, filename, def.Name, i, err)
		}
		addEdge(g, &out.Stats, log, u, v, w)
	}

	return out, nil
}

// hclInt converts an edge attribute to int64. Strings holding numbers are
// accepted. Integers outside the int64 range saturate, which the store then
// rejects as out of range.
func hclInt(attr string, v cty.Value) (int64, error) {
	n, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", attr, err)
	}
	if n.IsNull() || !n.IsKnown() {
		return 0, fmt.Errorf("%s: value required", attr)
	}
	bf := n.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("%s: %s is not an integer", attr, bf.Text('g', -1))
	}
	x, _ := bf.Int64()

	return x, nil
}

// hclIndex is hclInt for vertex indices: anything outside the int range maps
// to -1 so the store skips the edge as an invalid vertex.
func hclIndex(attr string, v cty.Value) (int, error) {
	x, err := hclInt(attr, v)
	if err != nil {
		return 0, err
	}
	if x == math.MaxInt64 || x == math.MinInt64 {
		return -1, nil
	}

	return clampIndex(x), nil
}
