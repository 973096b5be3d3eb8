// Package metrics computes segment-level ranking quality metrics: Kendall
// tau with significance, gain-based NDCG/ERR, and reciprocal rank. Each
// function takes a predicted and a gold rank vector describing the same
// items, index-aligned.
package metrics

import (
	"fmt"
	"math"

	"github.com/lefterav/rankeval/internal/ranking"
)

// TauOptions control the pair classification of KendallTau.
type TauOptions struct {
	Ties                  ranking.TiePolicy
	ExcludeTies           bool
	PenalizePredictedTies bool
	InvertGold            bool
}

// DefaultTauOptions returns the WMT12 configuration: ceiling tie handling,
// gold ties excluded, predicted ties counted as discordant.
func DefaultTauOptions() TauOptions {
	return TauOptions{
		Ties:                  ranking.TiesCeiling,
		ExcludeTies:           true,
		PenalizePredictedTies: true,
	}
}

// TauResult holds the Kendall tau of one segment together with the pair
// counts it was derived from. When ValidPairs is zero the segment has no
// comparable pairs and Tau/Prob are NaN.
type TauResult struct {
	Tau           float64
	Prob          float64
	Concordant    int
	Discordant    int
	ValidPairs    int
	GoldTies      int
	PredictedTies int
	AllPairs      int
}

// Defined reports whether the segment produced a usable tau.
func (r TauResult) Defined() bool { return r.ValidPairs > 0 }

// KendallTau computes the segment-level Kendall tau of a predicted against
// a gold ranking (Birch et al., WMT12). Pairs with an unjudged gold value
// are never counted; gold ties and predicted ties are excluded or penalized
// according to the options.
func KendallTau(predicted, gold ranking.Ranking, opts TauOptions) (TauResult, error) {
	if predicted.Len() != gold.Len() {
		return TauResult{}, fmt.Errorf("rank vector length mismatch: predicted %d, gold %d", predicted.Len(), gold.Len())
	}

	p, err := predicted.Normalize(opts.Ties)
	if err != nil {
		return TauResult{}, fmt.Errorf("normalize predicted ranks: %w", err)
	}
	g, err := gold.Normalize(opts.Ties)
	if err != nil {
		return TauResult{}, fmt.Errorf("normalize gold ranks: %w", err)
	}

	inv := 1.0
	if opts.InvertGold {
		inv = -1.0
	}

	var res TauResult
	n := p.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			gi, gj := g.At(i), g.At(j)
			pi, pj := p.At(i), p.At(j)

			res.AllPairs++
			if gi == gj {
				res.GoldTies++
			}
			if pi == pj {
				res.PredictedTies++
			}

			switch {
			// Unjudged items never form comparable pairs.
			case gi == ranking.Unjudged || gj == ranking.Unjudged:
			case gi == gj && opts.ExcludeTies:
			case (inv*gi > inv*gj && pi > pj) ||
				(inv*gi < inv*gj && pi < pj) ||
				(gi == gj && pi == pj):
				// The tied case is reachable only when gold ties are
				// not excluded.
				res.Concordant++
			case pi == pj && !opts.PenalizePredictedTies:
			default:
				res.Discordant++
			}
		}
	}

	res.ValidPairs = res.Concordant + res.Discordant
	if res.ValidPairs == 0 {
		res.Tau = math.NaN()
		res.Prob = math.NaN()
		return res, nil
	}

	res.Tau = float64(res.Concordant-res.Discordant) / float64(res.ValidPairs)
	res.Prob = TauProb(res.Tau, res.ValidPairs)
	return res, nil
}

// TauProb estimates the two-sided probability of the null hypothesis that
// the two rankings are independent, using the large-sample normal
// approximation of the tau distribution. Degenerate denominators fall back
// to 1, which only blurs significance for very small samples.
func TauProb(tau float64, pairs int) float64 {
	svar := 1.0
	if pairs > 1 {
		svar = (4.0*float64(pairs) + 10.0) / (9.0 * float64(pairs) * float64(pairs-1))
	}

	z := 1.0
	if svar > 0 {
		z = tau / math.Sqrt(svar)
	}

	return math.Erfc(math.Abs(z) / math.Sqrt2)
}
