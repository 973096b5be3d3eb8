package runner

import (
	"errors"
	"math"
	"strconv"

	"github.com/lefterav/rankeval/internal/eval/metrics"
	"github.com/lefterav/rankeval/internal/ranking"
)

var errNoSegments = errors.New("no segments to evaluate")

// KendallTauSet computes the set-level Kendall tau (Birch et al., WMT12).
// Concordant and discordant counts are pooled over all segments before the
// overall tau is derived, which is reported alongside the average of the
// per-segment taus. Segments without comparable pairs contribute their raw
// counts but are skipped from the averages.
func (r *Runner) KendallTauSet(segments []Segment) (Stats, error) {
	if len(segments) == 0 {
		return nil, errNoSegments
	}

	results, err := mapSegments(r.workers(), segments, func(s Segment) (metrics.TauResult, error) {
		return metrics.KendallTau(s.Predicted, s.Gold, r.config.tauOptions())
	})
	if err != nil {
		return nil, err
	}

	var concordant, discordant, validPairs, goldTies, predictedTies, allPairs int
	var segmentsWithTies, defined int
	var tauSum float64
	probProduct := 1.0

	for _, res := range results {
		concordant += res.Concordant
		discordant += res.Discordant
		validPairs += res.ValidPairs
		goldTies += res.GoldTies
		predictedTies += res.PredictedTies
		allPairs += res.AllPairs
		if res.PredictedTies > 0 {
			segmentsWithTies++
		}
		if res.Defined() {
			defined++
			tauSum += res.Tau
			probProduct *= res.Prob
		}
	}

	if validPairs == 0 {
		return nil, errors.New("no comparable pairs in any segment")
	}

	tau := float64(concordant-discordant) / float64(concordant+discordant)

	return Stats{
		"tau":                    tau,
		"tau_prob":               metrics.TauProb(tau, validPairs),
		"tau_avg_seg":            tauSum / float64(defined),
		"tau_avg_seg_prob":       probProduct,
		"tau_concordant":         float64(concordant),
		"tau_discordant":         float64(discordant),
		"tau_valid_pairs":        float64(validPairs),
		"tau_all_pairs":          float64(allPairs),
		"tau_gold_ties":          float64(goldTies),
		"tau_predicted_ties":     float64(predictedTies),
		"tau_predicted_ties_per": 100 * float64(predictedTies) / float64(allPairs),
		"tau_sentence_ties":      float64(segmentsWithTies),
		"tau_sentence_ties_per":  100 * float64(segmentsWithTies) / float64(len(segments)),
	}, nil
}

// MRR returns the mean of the per-segment reciprocal ranks.
func (r *Runner) MRR(segments []Segment) (Stats, error) {
	if len(segments) == 0 {
		return nil, errNoSegments
	}

	rrs, err := mapSegments(r.workers(), segments, func(s Segment) (float64, error) {
		return metrics.ReciprocalRank(s.Predicted, s.Gold, r.config.Ties)
	})
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, rr := range rrs {
		sum += rr
	}

	return Stats{"mrr": sum / float64(len(rrs))}, nil
}

// BestPredictedVsHuman tallies, for each gold rank value, how often the
// item the system ranked best ended up there, as a percentage of all
// segments. Useful for plotting the quality of the system's top pick.
func (r *Runner) BestPredictedVsHuman(segments []Segment) (Stats, error) {
	if len(segments) == 0 {
		return nil, errNoSegments
	}

	observed, err := mapSegments(r.workers(), segments, func(s Segment) (float64, error) {
		return worstGoldOfBestPredicted(s, ranking.TiesMinimize)
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[float64]int)
	for _, rank := range observed {
		if math.IsNaN(rank) {
			continue
		}
		counts[rank]++
	}

	stats := make(Stats, len(counts))
	for rank, count := range counts {
		key := "bph_" + strconv.FormatFloat(rank, 'f', -1, 64)
		stats[key] = math.Round(10000*float64(count)/float64(len(segments))) / 100
	}
	return stats, nil
}

// AvgPredictedRanked averages the gold rank observed for the system's top
// pick across all segments.
func (r *Runner) AvgPredictedRanked(segments []Segment) (Stats, error) {
	if len(segments) == 0 {
		return nil, errNoSegments
	}

	observed, err := mapSegments(r.workers(), segments, func(s Segment) (float64, error) {
		return worstGoldOfBestPredicted(s, ranking.TiesCeiling)
	})
	if err != nil {
		return nil, err
	}

	var sum float64
	counted := 0
	for _, rank := range observed {
		if math.IsNaN(rank) {
			continue
		}
		sum += rank
		counted++
	}
	if counted == 0 {
		return nil, errors.New("no non-empty segments")
	}

	return Stats{"avg_predicted_ranked": sum / float64(counted)}, nil
}

// worstGoldOfBestPredicted normalizes both rankings and returns the worst
// (highest) gold rank among the items sharing the best predicted rank.
// Empty segments yield NaN and are skipped by the callers.
func worstGoldOfBestPredicted(s Segment, ties ranking.TiePolicy) (float64, error) {
	p, err := s.Predicted.Normalize(ties)
	if err != nil {
		return 0, err
	}
	g, err := s.Gold.Normalize(ties)
	if err != nil {
		return 0, err
	}
	if p.Len() != g.Len() {
		return 0, errors.New("rank vector length mismatch")
	}
	if p.Len() == 0 {
		return math.NaN(), nil
	}

	best := p.At(0)
	for i := 1; i < p.Len(); i++ {
		if p.At(i) < best {
			best = p.At(i)
		}
	}

	worstGold := math.Inf(-1)
	for _, i := range p.IndexesOf(best) {
		if g.At(i) > worstGold {
			worstGold = g.At(i)
		}
	}
	return worstGold, nil
}

// AvgNDCGERR averages the per-segment NDCG and ERR values. The DCG cut-off
// is each segment's length unless CutoffK is configured.
func (r *Runner) AvgNDCGERR(segments []Segment) (Stats, error) {
	if len(segments) == 0 {
		return nil, errNoSegments
	}

	type gainPair struct {
		ndcg, err float64
	}
	pairs, err := mapSegments(r.workers(), segments, func(s Segment) (gainPair, error) {
		ndcg, errv, e := metrics.NDCGERR(s.Predicted, s.Gold, r.config.CutoffK)
		return gainPair{ndcg: ndcg, err: errv}, e
	})
	if err != nil {
		return nil, err
	}

	var ndcgSum, errSum float64
	for _, p := range pairs {
		ndcgSum += p.ndcg
		errSum += p.err
	}

	n := float64(len(pairs))
	// "ndgc" is the historical key spelling, kept for report continuity.
	return Stats{"ndgc": ndcgSum / n, "err": errSum / n}, nil
}

// AllMetrics runs every set-level statistic and merges the results into a
// single mapping.
func (r *Runner) AllMetrics(segments []Segment) (Stats, error) {
	stats := make(Stats)
	for _, f := range []func([]Segment) (Stats, error){
		r.KendallTauSet,
		r.MRR,
		r.BestPredictedVsHuman,
		r.AvgPredictedRanked,
		r.AvgNDCGERR,
	} {
		s, err := f(segments)
		if err != nil {
			return nil, err
		}
		stats.merge(s)
	}
	return stats, nil
}
