package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lefterav/rankeval/internal/ranking"
)

func TestReciprocalRank(t *testing.T) {
	tests := []struct {
		name      string
		predicted []float64
		gold      []float64
		want      float64
	}{
		{
			name:      "top picks coincide",
			predicted: []float64{1, 2, 3, 4},
			gold:      []float64{1, 2, 3, 4},
			want:      1.0,
		},
		{
			name:      "gold best predicted second",
			predicted: []float64{2, 1, 3},
			gold:      []float64{1, 2, 3},
			want:      0.5,
		},
		{
			name:      "gold tie resolves to best predicted choice",
			predicted: []float64{3, 1, 2},
			gold:      []float64{1, 1, 2},
			want:      1.0,
		},
		{
			name:      "unjudged items ignored",
			predicted: []float64{1, 2, 3},
			gold:      []float64{-1, 1, 2},
			want:      0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReciprocalRank(ranking.New(tt.predicted), ranking.New(tt.gold), ranking.TiesCeiling)
			require.NoError(t, err)

			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Greater(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestReciprocalRank_NoJudgedItems(t *testing.T) {
	_, err := ReciprocalRank(
		ranking.New([]float64{1, 2}),
		ranking.New([]float64{-1, -1}),
		ranking.TiesCeiling,
	)
	assert.Error(t, err)
}
