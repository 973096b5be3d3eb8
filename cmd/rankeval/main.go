package main

import (
	"log/slog"
	"os"

	"github.com/lefterav/rankeval/internal/corpus"
	"github.com/lefterav/rankeval/internal/eval/report"
	"github.com/lefterav/rankeval/internal/eval/runner"
	"github.com/lefterav/rankeval/internal/eval/spec"
	"github.com/lefterav/rankeval/internal/ranking"
)

func main() {
	cfg := parseFlags()

	var es *spec.EvalSpec
	if cfg.SpecPath != "" {
		loaded, err := spec.LoadFromFile(cfg.SpecPath)
		if err != nil {
			slog.Error("Failed to load spec", "path", cfg.SpecPath, "error", err)
			os.Exit(1)
		}
		es = loaded
	} else {
		es = buildQuickSpec(cfg)
	}

	run(es, cfg.Output)
}

func buildQuickSpec(cfg cliConfig) *spec.EvalSpec {
	if cfg.CorpusPath == "" || cfg.Predicted == "" || cfg.Gold == "" {
		slog.Error("Quick mode requires -corpus, -predicted and -gold")
		os.Exit(1)
	}
	if _, err := ranking.ParseTiePolicy(cfg.Ties); err != nil {
		slog.Error("Invalid tie policy", "error", err)
		os.Exit(1)
	}

	return &spec.EvalSpec{
		Jobs: []spec.Job{
			{
				Name:      "quick",
				Corpus:    cfg.CorpusPath,
				Predicted: cfg.Predicted,
				Gold:      cfg.Gold,
			},
		},
		Metrics: spec.MetricsConfig{
			Ties:                  cfg.Ties,
			ExcludeTies:           &cfg.ExcludeTies,
			PenalizePredictedTies: &cfg.PenalizeTies,
			InvertGold:            cfg.InvertGold,
			K:                     cfg.K,
			Workers:               cfg.Workers,
		},
	}
}

func run(es *spec.EvalSpec, outputPath string) {
	runCfg := es.RunnerConfig()
	r := runner.New(runCfg)

	var results []report.JobResult
	for _, job := range es.Jobs {
		ds, err := corpus.ReadFile(job.Corpus)
		if err != nil {
			slog.Error("Failed to load corpus", "job", job.Name, "path", job.Corpus, "error", err)
			os.Exit(1)
		}

		segments, err := ds.Segments(job.Predicted, job.Gold)
		if err != nil {
			slog.Error("Failed to extract rank vectors", "job", job.Name, "error", err)
			os.Exit(1)
		}

		stats, err := r.AllMetrics(segments)
		if err != nil {
			slog.Error("Evaluation failed", "job", job.Name, "error", err)
			os.Exit(1)
		}

		results = append(results, report.JobResult{
			Name:     job.Name,
			Corpus:   job.Corpus,
			Segments: len(segments),
			Stats:    stats,
		})
	}

	rpt := report.Generate(runCfg, results)
	report.WriteTable(rpt, os.Stdout)

	if outputPath != "" {
		if err := report.WriteJSON(rpt, outputPath); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", outputPath)
	}
}
