// Package spec loads the YAML file describing an evaluation run.
package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lefterav/rankeval/internal/eval/runner"
	"github.com/lefterav/rankeval/internal/ranking"
)

func LoadFromFile(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*EvalSpec, error) {
	var s EvalSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *EvalSpec) error {
	if len(s.Jobs) == 0 {
		return fmt.Errorf("spec has no jobs")
	}
	for i, j := range s.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job at index %d has no name", i)
		}
		if j.Corpus == "" {
			return fmt.Errorf("job %q has no corpus", j.Name)
		}
		if j.Predicted == "" {
			return fmt.Errorf("job %q has no predicted attribute", j.Name)
		}
		if j.Gold == "" {
			return fmt.Errorf("job %q has no gold attribute", j.Name)
		}
	}
	if s.Metrics.Ties != "" {
		if _, err := ranking.ParseTiePolicy(s.Metrics.Ties); err != nil {
			return err
		}
	}
	if s.Metrics.K < 0 {
		return fmt.Errorf("metrics cut-off k must not be negative, got %d", s.Metrics.K)
	}
	return nil
}

// RunnerConfig translates the metrics block into a runner configuration,
// filling in the defaults for anything unset.
func (s *EvalSpec) RunnerConfig() runner.Config {
	cfg := runner.DefaultConfig()

	if s.Metrics.Ties != "" {
		// Validated during Parse.
		cfg.Ties, _ = ranking.ParseTiePolicy(s.Metrics.Ties)
	}
	if s.Metrics.ExcludeTies != nil {
		cfg.ExcludeTies = *s.Metrics.ExcludeTies
	}
	if s.Metrics.PenalizePredictedTies != nil {
		cfg.PenalizePredictedTies = *s.Metrics.PenalizePredictedTies
	}
	cfg.InvertGold = s.Metrics.InvertGold
	cfg.CutoffK = s.Metrics.K
	cfg.Workers = s.Metrics.Workers

	return cfg
}
