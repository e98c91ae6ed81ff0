package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/apsp/johnson"
)

// ErrNilResult indicates WriteReport was given no result.
var ErrNilResult = errors.New("graphio: result is nil")

// ReportOptions selects the optional report sections.
type ReportOptions struct {
	// Paths appends one line per reachable ordered pair (i ≠ j) with its
	// vertex sequence and cost.
	Paths bool
}

// WriteReport renders res as text:
//
//	Distance matrix:
//	      0      -5      -3       0
//	    INF       0       2       5
//	…
//
// Each cell is right-aligned in 7 columns and followed by a space;
// unreachable cells print INF. With opts.Paths a blank line and a
// "Paths:" section follow, e.g. "0 -> 1 -> 2 -> 3 (cost 0)".
func WriteReport(w io.Writer, res *johnson.Result, opts ReportOptions) error {
	if res == nil {
		return ErrNilResult
	}
	bw := bufio.NewWriter(w)
	n := res.Size()

	fmt.Fprintln(bw, "Distance matrix:")
	for i := 0; i < n; i++ {
		row, err := res.Dist.Row(i)
		if err != nil {
			return err
		}
		for _, d := range row {
			if v, ok := d.Value(); ok {
				fmt.Fprintf(bw, "%7d ", v)
			} else {
				fmt.Fprintf(bw, "%7s ", "INF")
			}
		}
		fmt.Fprintln(bw)
	}

	if opts.Paths {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Paths:")
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				d, _ := res.Distance(i, j)
				if d.IsInf() {
					continue
				}
				path, err := res.Path(i, j)
				if err != nil {
					return fmt.Errorf("graphio: path %d→%d: %w", i, j, err)
				}
				fmt.Fprintf(bw, "%s (cost %d)\n", joinPath(path), d.Int64())
			}
		}
	}

	return bw.Flush()
}

func joinPath(path []int) string {
	parts := make([]string, len(path))
	for k, v := range path {
		parts[k] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}
