package runner

import (
	"github.com/lefterav/rankeval/internal/ranking"
)

// Segment is one unit of comparison: the predicted and the gold ranking of
// the same candidate items, index-aligned.
type Segment struct {
	ID        string
	Predicted ranking.Ranking
	Gold      ranking.Ranking
}

// Stats maps metric names to corpus-level aggregate values.
type Stats map[string]float64

func (s Stats) merge(other Stats) {
	for k, v := range other {
		s[k] = v
	}
}
