package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/apsp/core"
)

// ReadEdgeList reads the whitespace-separated edge-list format:
//
//	V E
//	u₁ v₁ w₁
//	…
//	u_E v_E w_E
//
// Line breaks carry no meaning; only the token order does. Edges naming a
// vertex outside [0, V), including integers too large for int64, are logged
// at Warn and skipped, as are weights beyond ±core.MaxAbsWeight. A token that
// is not an integer, a negative V or E, or fewer than 2+3E tokens yield
// ErrMalformedInput. Tokens after the last edge are ignored.
func ReadEdgeList(r io.Reader, logger *slog.Logger) (*Loaded, error) {
	log := orDiscard(logger)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tr := &tokenReader{sc: sc}

	v, err := tr.int("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := tr.int("edge count")
	if err != nil {
		return nil, err
	}
	if v < 0 || e < 0 {
		return nil, fmt.Errorf("%w: negative count (V=%d, E=%d)", ErrMalformedInput, v, e)
	}
	if v > MaxVertices {
		return nil, fmt.Errorf("%w: V=%d exceeds %d", ErrMalformedInput, v, MaxVertices)
	}

	g, err := core.NewGraph(int(v), core.WithEdgeCapacity(int(min(e, 1<<20))))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	log.Debug("reading edge list", "vertices", v, "edges", e)

	out := &Loaded{Graph: g}
	for i := int64(0); i < e; i++ {
		u, err := tr.index("edge source")
		if err != nil {
			return nil, err
		}
		to, err := tr.index("edge target")
		if err != nil {
			return nil, err
		}
		w, err := tr.weight("edge weight")
		if err != nil {
			return nil, err
		}
		addEdge(g, &out.Stats, log, u, to, w)
	}
	log.Debug("edge list read", "added", out.Stats.Added, "skipped", out.Stats.Skipped)

	return out, nil
}

// tokenReader pulls integer tokens off a word scanner, counting them for
// error messages.
type tokenReader struct {
	sc *bufio.Scanner
	n  int
}

func (t *tokenReader) int(what string) (int64, error) {
	x, err := t.parse()
	if err != nil {
		return 0, t.wrap(what, err)
	}

	return x, nil
}

// index reads a vertex token. Integers beyond int64 are still integers and
// become -1, so the store skips the edge instead of aborting the read.
func (t *tokenReader) index(what string) (int, error) {
	x, err := t.parse()
	if errors.Is(err, strconv.ErrRange) {
		return -1, nil
	}
	if err != nil {
		return 0, t.wrap(what, err)
	}

	return clampIndex(x), nil
}

// weight reads a weight token; integers beyond int64 saturate and the store
// rejects them as out of range.
func (t *tokenReader) weight(what string) (int64, error) {
	x, err := t.parse()
	if errors.Is(err, strconv.ErrRange) {
		return x, nil
	}
	if err != nil {
		return 0, t.wrap(what, err)
	}

	return x, nil
}

func (t *tokenReader) parse() (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	t.n++

	return strconv.ParseInt(t.sc.Text(), 10, 64)
}

func (t *tokenReader) wrap(what string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of input, want %s (token %d)", ErrMalformedInput, what, t.n+1)
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Errorf("%w: %s %q at token %d", ErrMalformedInput, what, numErr.Num, t.n)
	}

	return fmt.Errorf("%w: reading %s: %w", ErrMalformedInput, what, err)
}

// clampIndex maps values beyond the int range to -1 so the graph store
// rejects them as invalid vertices instead of wrapping around.
func clampIndex(x int64) int {
	if int64(int(x)) != x {
		return -1
	}

	return int(x)
}
