package metrics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lefterav/rankeval/internal/ranking"
)

// NDCGERR computes Normalized Discounted Cumulative Gain and Expected
// Reciprocal Rank for one segment, following the Yahoo Learning-to-Rank
// challenge evaluation. Both vectors are normalized with the ceiling policy
// and coerced to integer ranks. k cuts off the DCG sums only; pass k <= 0
// to use the segment length.
func NDCGERR(predicted, gold ranking.Ranking, k int) (ndcg, err float64, _ error) {
	if predicted.Len() != gold.Len() {
		return 0, 0, fmt.Errorf("rank vector length mismatch: predicted %d, gold %d", predicted.Len(), gold.Len())
	}

	pn, e := predicted.Normalize(ranking.TiesCeiling)
	if e != nil {
		return 0, 0, fmt.Errorf("normalize predicted ranks: %w", e)
	}
	gn, e := gold.Normalize(ranking.TiesCeiling)
	if e != nil {
		return 0, 0, fmt.Errorf("normalize gold ranks: %w", e)
	}
	r := pn.Integers()
	l := gn.Integers()

	n := l.Len()
	if k <= 0 || k > n {
		k = n
	}

	gains, e := gainsByPredictedPosition(r, l)
	if e != nil {
		return 0, 0, e
	}

	// ERR cascade over the predicted order: the probability mass of a user
	// stopping at each position, discounted by the position.
	notStopped := 1.0
	for j, g := range gains {
		err += notStopped * g / float64(j+1)
		notStopped *= 1 - g
	}

	var dcg float64
	for j := 0; j < k; j++ {
		dcg += gains[j] / math.Log(float64(j+2))
	}

	ideal := make([]float64, n)
	copy(ideal, gains)
	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))
	var idcg float64
	for j := 0; j < k; j++ {
		idcg += ideal[j] / math.Log(float64(j+2))
	}

	if idcg == 0 {
		// All-zero gains: any order is ideal.
		return 1.0, err, nil
	}
	return dcg / idcg, err, nil
}

// gainsByPredictedPosition places each item's relevance gain at the
// position the system predicted for it. The item holding gold rank g out
// of n carries relevance n-g+1 and gain (2^rel - 1) / 2^n. Predicted ranks
// must be a permutation of 1..n; duplicates or out-of-range ranks would
// silently land two items in one slot and are rejected.
func gainsByPredictedPosition(predicted, gold ranking.Ranking) ([]float64, error) {
	n := gold.Len()
	gains := make([]float64, n)
	filled := make([]bool, n)
	expn := math.Pow(2, float64(n))

	for j := 0; j < n; j++ {
		pos := int(predicted.At(j)) - 1
		if pos < 0 || pos >= n {
			return nil, fmt.Errorf("predicted rank %v at index %d outside 1..%d", predicted.At(j), j, n)
		}
		if filled[pos] {
			return nil, fmt.Errorf("duplicate predicted rank %v: gain slot %d already filled", predicted.At(j), pos)
		}
		filled[pos] = true
		if gold.At(j) == ranking.Unjudged {
			// No judgment, no gain.
			continue
		}
		rel := float64(n) - gold.At(j) + 1
		gains[pos] = (math.Pow(2, rel) - 1) / expn
	}

	return gains, nil
}
