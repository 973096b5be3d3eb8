package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lefterav/rankeval/internal/ranking"
)

func TestKendallTau(t *testing.T) {
	tests := []struct {
		name           string
		predicted      []float64
		gold           []float64
		opts           TauOptions
		wantTau        float64
		wantConcordant int
		wantDiscordant int
		wantValidPairs int
		wantAllPairs   int
	}{
		{
			name:           "perfect agreement",
			predicted:      []float64{1, 2, 3, 4},
			gold:           []float64{1, 2, 3, 4},
			opts:           DefaultTauOptions(),
			wantTau:        1.0,
			wantConcordant: 6,
			wantDiscordant: 0,
			wantValidPairs: 6,
			wantAllPairs:   6,
		},
		{
			name:           "perfect disagreement",
			predicted:      []float64{1, 2, 3, 4},
			gold:           []float64{4, 3, 2, 1},
			opts:           DefaultTauOptions(),
			wantTau:        -1.0,
			wantConcordant: 0,
			wantDiscordant: 6,
			wantValidPairs: 6,
			wantAllPairs:   6,
		},
		{
			name:           "unjudged gold values excluded",
			predicted:      []float64{1, 2, 3},
			gold:           []float64{-1, 1, 2},
			opts:           DefaultTauOptions(),
			wantTau:        1.0,
			wantConcordant: 1,
			wantDiscordant: 0,
			wantValidPairs: 1,
			wantAllPairs:   3,
		},
		{
			name:           "gold ties excluded by default",
			predicted:      []float64{1, 2, 3},
			gold:           []float64{1, 1, 2},
			opts:           DefaultTauOptions(),
			wantTau:        1.0,
			wantConcordant: 2,
			wantDiscordant: 0,
			wantValidPairs: 2,
			wantAllPairs:   3,
		},
		{
			name:      "gold ties kept and broken by prediction",
			predicted: []float64{1, 2, 3},
			gold:      []float64{1, 1, 2},
			opts: TauOptions{
				Ties:                  ranking.TiesCeiling,
				ExcludeTies:           false,
				PenalizePredictedTies: true,
			},
			wantTau:        1.0 / 3,
			wantConcordant: 2,
			wantDiscordant: 1,
			wantValidPairs: 3,
			wantAllPairs:   3,
		},
		{
			name:           "predicted ties penalized",
			predicted:      []float64{1, 1, 2},
			gold:           []float64{1, 2, 3},
			opts:           DefaultTauOptions(),
			wantTau:        1.0 / 3,
			wantConcordant: 2,
			wantDiscordant: 1,
			wantValidPairs: 3,
			wantAllPairs:   3,
		},
		{
			name:      "predicted ties forgiven",
			predicted: []float64{1, 1, 2},
			gold:      []float64{1, 2, 3},
			opts: TauOptions{
				Ties:                  ranking.TiesCeiling,
				ExcludeTies:           true,
				PenalizePredictedTies: false,
			},
			wantTau:        1.0,
			wantConcordant: 2,
			wantDiscordant: 0,
			wantValidPairs: 2,
			wantAllPairs:   3,
		},
		{
			name:      "inverted gold",
			predicted: []float64{1, 2, 3, 4},
			gold:      []float64{1, 2, 3, 4},
			opts: TauOptions{
				Ties:                  ranking.TiesCeiling,
				ExcludeTies:           true,
				PenalizePredictedTies: true,
				InvertGold:            true,
			},
			wantTau:        -1.0,
			wantConcordant: 0,
			wantDiscordant: 6,
			wantValidPairs: 6,
			wantAllPairs:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KendallTau(ranking.New(tt.predicted), ranking.New(tt.gold), tt.opts)
			require.NoError(t, err)

			assert.True(t, got.Defined())
			assert.InDelta(t, tt.wantTau, got.Tau, 1e-9)
			assert.Equal(t, tt.wantConcordant, got.Concordant)
			assert.Equal(t, tt.wantDiscordant, got.Discordant)
			assert.Equal(t, tt.wantValidPairs, got.ValidPairs)
			assert.Equal(t, tt.wantAllPairs, got.AllPairs)
			assert.GreaterOrEqual(t, got.Tau, -1.0)
			assert.LessOrEqual(t, got.Tau, 1.0)
		})
	}
}

func TestKendallTau_TieCounts(t *testing.T) {
	got, err := KendallTau(
		ranking.New([]float64{1, 1, 2, 3}),
		ranking.New([]float64{2, 2, 2, 1}),
		DefaultTauOptions(),
	)
	require.NoError(t, err)

	// Ties are counted over all pairs, independent of exclusion.
	assert.Equal(t, 3, got.GoldTies)
	assert.Equal(t, 1, got.PredictedTies)
	assert.Equal(t, 6, got.AllPairs)
}

func TestKendallTau_NoComparablePairs(t *testing.T) {
	got, err := KendallTau(
		ranking.New([]float64{1, 2, 3}),
		ranking.New([]float64{-1, -1, -1}),
		DefaultTauOptions(),
	)
	require.NoError(t, err)

	assert.False(t, got.Defined())
	assert.Equal(t, 0, got.ValidPairs)
	assert.True(t, math.IsNaN(got.Tau))
	assert.True(t, math.IsNaN(got.Prob))
	assert.Equal(t, 3, got.AllPairs)
}

func TestKendallTau_LengthMismatch(t *testing.T) {
	_, err := KendallTau(
		ranking.New([]float64{1, 2}),
		ranking.New([]float64{1, 2, 3}),
		DefaultTauOptions(),
	)
	assert.Error(t, err)
}

func TestTauProb(t *testing.T) {
	// Perfect agreement over six pairs is significant at the 5% level.
	prob := TauProb(1.0, 6)
	assert.Greater(t, prob, 0.0)
	assert.Less(t, prob, 0.05)

	// Independent rankings are not.
	assert.InDelta(t, 1.0, TauProb(0.0, 6), 1e-9)

	// Degenerate pair counts fall back without blowing up.
	assert.False(t, math.IsNaN(TauProb(0.5, 1)))
	assert.False(t, math.IsNaN(TauProb(0.5, 0)))
}
