// Package ranking holds the rank-vector value type and its normalization
// under configurable tie policies.
package ranking

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Unjudged marks an item that received no gold judgment. It survives
// normalization untouched so that pair-counting code can exclude it.
const Unjudged = -1

// TiePolicy selects how normalization assigns rank numbers to a group of
// items tied at the same raw value.
type TiePolicy string

const (
	// TiesMinimize collapses a tied group into a single rank slot.
	TiesMinimize TiePolicy = "minimize"
	// TiesFloor reserves the full block of slots but assigns the lowest.
	TiesFloor TiePolicy = "floor"
	// TiesCeiling reserves the full block of slots but assigns the highest.
	TiesCeiling TiePolicy = "ceiling"
	// TiesMiddle assigns the arithmetic mean of the block's slots.
	TiesMiddle TiePolicy = "middle"
)

// ParseTiePolicy converts a config string into a TiePolicy.
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch p := TiePolicy(s); p {
	case TiesMinimize, TiesFloor, TiesCeiling, TiesMiddle:
		return p, nil
	}
	return "", fmt.Errorf("unknown tie policy %q", s)
}

// Ranking is an immutable vector of rank values, index-aligned with the
// companion vector it will be compared against. The zero value is an empty,
// unnormalized ranking.
type Ranking struct {
	values []float64
	// policy that produced the current values; empty for raw input.
	normalizedWith TiePolicy
}

// New copies vals into a raw (unnormalized) Ranking.
func New(vals []float64) Ranking {
	v := make([]float64, len(vals))
	copy(v, vals)
	return Ranking{values: v}
}

// FromStrings parses raw attribute values into a Ranking.
func FromStrings(vals []string) (Ranking, error) {
	v := make([]float64, len(vals))
	for i, s := range vals {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Ranking{}, fmt.Errorf("rank value %q at index %d: %w", s, i, err)
		}
		v[i] = f
	}
	return Ranking{values: v}, nil
}

// Len returns the number of ranked items.
func (r Ranking) Len() int { return len(r.values) }

// At returns the rank value at index i.
func (r Ranking) At(i int) float64 { return r.values[i] }

// Values returns a copy of the rank values.
func (r Ranking) Values() []float64 {
	v := make([]float64, len(r.values))
	copy(v, r.values)
	return v
}

// NormalizedWith reports the tie policy that produced the current values,
// or false if the ranking is raw.
func (r Ranking) NormalizedWith() (TiePolicy, bool) {
	return r.normalizedWith, r.normalizedWith != ""
}

// IndexesOf returns all positions holding the given value, in ascending
// index order.
func (r Ranking) IndexesOf(value float64) []int {
	var idx []int
	for i, v := range r.values {
		if v == value {
			idx = append(idx, i)
		}
	}
	return idx
}

// Integers returns the ranking with every value rounded to the nearest
// integer. Halves round away from zero.
func (r Ranking) Integers() Ranking {
	v := make([]float64, len(r.values))
	for i, f := range r.values {
		v[i] = math.Round(f)
	}
	return Ranking{values: v, normalizedWith: r.normalizedWith}
}

// Normalize compacts a messy ranking like [1,3,5,4] into dense rank numbers
// starting at 1, resolving tied raw values according to the policy.
// Unjudged entries are skipped and kept as-is. An empty ranking normalizes
// to an empty ranking.
func (r Ranking) Normalize(policy TiePolicy) (Ranking, error) {
	sentinel := make([]bool, len(r.values))
	for i, v := range r.values {
		sentinel[i] = v == Unjudged
	}
	return normalizeMasked(r.values, sentinel, policy)
}

// normalizeMasked assigns dense ranks to every non-sentinel position. The
// mask is separate from the values so that Invert's negated ranks cannot
// collide with the sentinel value.
func normalizeMasked(values []float64, sentinel []bool, policy TiePolicy) (Ranking, error) {
	out := make([]float64, len(values))
	assigned := make([]bool, len(values))

	groups := make(map[float64]int)
	for i, v := range values {
		if sentinel[i] {
			out[i] = Unjudged
			assigned[i] = true
			continue
		}
		groups[v]++
	}

	ordered := make([]float64, 0, len(groups))
	for v := range groups {
		ordered = append(ordered, v)
	}
	sort.Float64s(ordered)

	nextSlot := 0
	for _, raw := range ordered {
		nextSlot++
		value, next, err := tiedRank(policy, nextSlot, groups[raw])
		if err != nil {
			return Ranking{}, err
		}
		for i, v := range values {
			if !sentinel[i] && v == raw {
				out[i] = value
				assigned[i] = true
			}
		}
		nextSlot = next
	}

	// Contract check: every slot must have been filled exactly once.
	for i, ok := range assigned {
		if !ok {
			return Ranking{}, fmt.Errorf("normalization left rank slot %d unassigned", i)
		}
	}

	return Ranking{values: out, normalizedWith: policy}, nil
}

// tiedRank returns the rank value assigned to a group of count items whose
// slot block starts at slot, and the slot the iteration resumes from.
func tiedRank(policy TiePolicy, slot, count int) (value float64, next int, err error) {
	last := slot + count - 1
	if count <= 1 {
		return float64(slot), slot, nil
	}
	switch policy {
	case TiesMinimize:
		return float64(slot), slot, nil
	case TiesFloor:
		return float64(slot), last, nil
	case TiesCeiling:
		return float64(last), last, nil
	case TiesMiddle:
		return float64(slot-1) + (float64(count)+1)/2, last, nil
	}
	return 0, 0, fmt.Errorf("unknown tie policy %q", policy)
}

// Invert negates every raw value and normalizes, so that the previously
// best (lowest) item becomes the worst. Unjudged entries stay unjudged.
func (r Ranking) Invert(policy TiePolicy) (Ranking, error) {
	inv := make([]float64, len(r.values))
	sentinel := make([]bool, len(r.values))
	for i, v := range r.values {
		sentinel[i] = v == Unjudged
		inv[i] = -v
	}
	return normalizeMasked(inv, sentinel, policy)
}
