package metrics

import (
	"fmt"

	"github.com/lefterav/rankeval/internal/ranking"
)

// ReciprocalRank returns 1/r where r is the best predicted rank among the
// items the gold ranking judged best (Radev et al., 2002). A gold tie for
// the best rank resolves to the system's best choice among the tied items.
func ReciprocalRank(predicted, gold ranking.Ranking, ties ranking.TiePolicy) (float64, error) {
	if predicted.Len() != gold.Len() {
		return 0, fmt.Errorf("rank vector length mismatch: predicted %d, gold %d", predicted.Len(), gold.Len())
	}

	p, err := predicted.Normalize(ties)
	if err != nil {
		return 0, fmt.Errorf("normalize predicted ranks: %w", err)
	}
	g, err := gold.Normalize(ties)
	if err != nil {
		return 0, fmt.Errorf("normalize gold ranks: %w", err)
	}

	bestGold, found := 0.0, false
	for i := 0; i < g.Len(); i++ {
		if v := g.At(i); v != ranking.Unjudged && (!found || v < bestGold) {
			bestGold, found = v, true
		}
	}
	if !found {
		return 0, fmt.Errorf("no judged items in gold ranking")
	}

	bestPredicted := 0.0
	for i, idx := range g.IndexesOf(bestGold) {
		if v := p.At(idx); i == 0 || v < bestPredicted {
			bestPredicted = v
		}
	}

	return 1.0 / bestPredicted, nil
}
