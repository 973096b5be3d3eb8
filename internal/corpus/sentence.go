// Package corpus models the judged-sentence corpus consumed by the
// evaluation: parallel sentences whose translation candidates carry
// arbitrary string attributes, among them the predicted and gold ranks.
package corpus

import (
	"fmt"

	"github.com/lefterav/rankeval/internal/ranking"
)

// SimpleSentence is one sentence with its annotation attributes.
type SimpleSentence struct {
	Text       string
	Attributes map[string]string
}

// ParallelSentence groups a source sentence with its translation
// candidates and an optional reference translation.
type ParallelSentence struct {
	Source     SimpleSentence
	Targets    []SimpleSentence
	Reference  *SimpleSentence
	Attributes map[string]string
}

// ID returns the sentence-level id attribute, if present.
func (ps *ParallelSentence) ID() string {
	return ps.Attributes["id"]
}

// TargetAttributeValues collects the value of the named attribute from
// every translation candidate, in candidate order. A candidate missing the
// attribute is an error: a partially judged sentence would silently skew
// the rank vectors.
func (ps *ParallelSentence) TargetAttributeValues(name string) ([]string, error) {
	values := make([]string, len(ps.Targets))
	for i, tgt := range ps.Targets {
		v, ok := tgt.Attributes[name]
		if !ok {
			return nil, fmt.Errorf("target %d has no attribute %q", i, name)
		}
		values[i] = v
	}
	return values, nil
}

// RankPair extracts the predicted and gold rank vectors from the two named
// target attributes.
func (ps *ParallelSentence) RankPair(predictedAttr, goldAttr string) (predicted, gold ranking.Ranking, _ error) {
	pv, err := ps.TargetAttributeValues(predictedAttr)
	if err != nil {
		return ranking.Ranking{}, ranking.Ranking{}, err
	}
	gv, err := ps.TargetAttributeValues(goldAttr)
	if err != nil {
		return ranking.Ranking{}, ranking.Ranking{}, err
	}

	predicted, err = ranking.FromStrings(pv)
	if err != nil {
		return ranking.Ranking{}, ranking.Ranking{}, fmt.Errorf("attribute %q: %w", predictedAttr, err)
	}
	gold, err = ranking.FromStrings(gv)
	if err != nil {
		return ranking.Ranking{}, ranking.Ranking{}, fmt.Errorf("attribute %q: %w", goldAttr, err)
	}
	return predicted, gold, nil
}
