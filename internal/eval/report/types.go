package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/lefterav/rankeval/internal/eval/runner"
)

// Report is the serializable outcome of one evaluation run.
type Report struct {
	RunID       uuid.UUID    `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Config      ReportConfig `json:"config"`
	Jobs        []JobReport  `json:"jobs"`
}

type ReportConfig struct {
	Ties                  string `json:"ties"`
	ExcludeTies           bool   `json:"exclude_ties"`
	PenalizePredictedTies bool   `json:"penalize_predicted_ties"`
	InvertGold            bool   `json:"invert_gold"`
	CutoffK               int    `json:"k,omitempty"`
}

type JobReport struct {
	Name     string             `json:"name"`
	Corpus   string             `json:"corpus"`
	Segments int                `json:"segments"`
	Metrics  map[string]float64 `json:"metrics"`
}

// JobResult is one evaluated job handed over by the caller.
type JobResult struct {
	Name     string
	Corpus   string
	Segments int
	Stats    runner.Stats
}

// Generate stamps the evaluated jobs into a report.
func Generate(cfg runner.Config, jobs []JobResult) *Report {
	r := &Report{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Config: ReportConfig{
			Ties:                  string(cfg.Ties),
			ExcludeTies:           cfg.ExcludeTies,
			PenalizePredictedTies: cfg.PenalizePredictedTies,
			InvertGold:            cfg.InvertGold,
			CutoffK:               cfg.CutoffK,
		},
	}
	for _, job := range jobs {
		r.Jobs = append(r.Jobs, JobReport{
			Name:     job.Name,
			Corpus:   job.Corpus,
			Segments: job.Segments,
			Metrics:  job.Stats,
		})
	}
	return r
}
