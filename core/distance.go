// File: distance.go
// Role: Distance, an explicit "finite integer or unreachable" value.
// Policy:
//   - The zero Distance is unreachable, so freshly allocated rows start at +∞.
//   - No magic sentinel shares the int64 range; negative costs are never
//     confused with "no path".

package core

import (
	"math"
	"strconv"
)

// Distance is a path cost that is either a finite signed integer or
// unreachable (+∞).
type Distance struct {
	value  int64
	finite bool
}

// Finite returns a reachable Distance with cost x.
func Finite(x int64) Distance {
	return Distance{value: x, finite: true}
}

// Infinity returns the unreachable Distance. It equals the zero value.
func Infinity() Distance {
	return Distance{}
}

// IsInf reports whether d is unreachable.
func (d Distance) IsInf() bool { return !d.finite }

// IsFinite reports whether d is a reachable cost.
func (d Distance) IsFinite() bool { return d.finite }

// Value returns the cost and whether it is finite. The cost is 0 when d is
// unreachable.
func (d Distance) Value() (int64, bool) {
	return d.value, d.finite
}

// Int64 returns the finite cost, or 0 for an unreachable Distance.
func (d Distance) Int64() int64 { return d.value }

// Add returns d + w, saturating at the int64 bounds. Unreachable stays
// unreachable.
func (d Distance) Add(w int64) Distance {
	if !d.finite {
		return d
	}
	switch {
	case w > 0 && d.value > math.MaxInt64-w:
		return Distance{value: math.MaxInt64, finite: true}
	case w < 0 && d.value < math.MinInt64-w:
		return Distance{value: math.MinInt64, finite: true}
	}

	return Distance{value: d.value + w, finite: true}
}

// Less reports whether d is strictly shorter than o, treating unreachable
// as greater than every finite cost.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.value < o.value
	}
}

// LessOrEqual reports d ≤ o under the same ordering as Less.
func (d Distance) LessOrEqual(o Distance) bool {
	return !o.Less(d)
}

// String renders the cost in decimal, or "INF" when unreachable.
func (d Distance) String() string {
	if !d.finite {
		return "INF"
	}

	return strconv.FormatInt(d.value, 10)
}
