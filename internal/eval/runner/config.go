package runner

import (
	"github.com/lefterav/rankeval/internal/eval/metrics"
	"github.com/lefterav/rankeval/internal/ranking"
)

type Config struct {
	// Ties is the normalization policy for tau and reciprocal rank.
	Ties                  ranking.TiePolicy
	ExcludeTies           bool
	PenalizePredictedTies bool
	InvertGold            bool
	// CutoffK caps the DCG sums; 0 uses each segment's length.
	CutoffK int
	// Workers bounds concurrent segment evaluation; 0 uses GOMAXPROCS.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Ties:                  ranking.TiesCeiling,
		ExcludeTies:           true,
		PenalizePredictedTies: true,
	}
}

func (c Config) tauOptions() metrics.TauOptions {
	return metrics.TauOptions{
		Ties:                  c.Ties,
		ExcludeTies:           c.ExcludeTies,
		PenalizePredictedTies: c.PenalizePredictedTies,
		InvertGold:            c.InvertGold,
	}
}
