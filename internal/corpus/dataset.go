package corpus

import (
	"fmt"

	"github.com/lefterav/rankeval/internal/eval/runner"
)

// Dataset holds the parallel sentences of one corpus file.
type Dataset struct {
	Sentences []ParallelSentence
}

// TargetAttributeNames returns the union of attribute names seen on any
// translation candidate.
func (d *Dataset) TargetAttributeNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, ps := range d.Sentences {
		for _, tgt := range ps.Targets {
			for name := range tgt.Attributes {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}
	return names
}

// Segments extracts one evaluation segment per sentence from the two named
// rank attributes.
func (d *Dataset) Segments(predictedAttr, goldAttr string) ([]runner.Segment, error) {
	segments := make([]runner.Segment, 0, len(d.Sentences))
	for i := range d.Sentences {
		ps := &d.Sentences[i]
		predicted, gold, err := ps.RankPair(predictedAttr, goldAttr)
		if err != nil {
			return nil, fmt.Errorf("sentence %q (index %d): %w", ps.ID(), i, err)
		}
		id := ps.ID()
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}
		segments = append(segments, runner.Segment{ID: id, Predicted: predicted, Gold: gold})
	}
	return segments, nil
}
