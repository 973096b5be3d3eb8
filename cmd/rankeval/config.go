package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type cliConfig struct {
	SpecPath     string
	CorpusPath   string
	Predicted    string
	Gold         string
	Ties         string
	ExcludeTies  bool
	PenalizeTies bool
	InvertGold   bool
	K            int
	Workers      int
	Output       string
}

// envDefaults seeds flag defaults from RANKEVAL_* variables, optionally
// loaded from a .env file.
type envDefaults struct {
	Ties    string `envconfig:"TIES" default:"ceiling"`
	Workers int    `envconfig:"WORKERS"`
	Output  string `envconfig:"OUTPUT"`
}

func parseFlags() cliConfig {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	var defaults envDefaults
	if err := envconfig.Process("rankeval", &defaults); err != nil {
		slog.Error("Invalid RANKEVAL_* environment", "error", err)
		os.Exit(1)
	}

	cfg := cliConfig{}

	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to eval spec YAML (multi-job mode)")
	flag.StringVar(&cfg.CorpusPath, "corpus", "", "Path to JCML corpus file (quick single-job mode)")
	flag.StringVar(&cfg.Predicted, "predicted", "", "Target attribute holding the predicted rank")
	flag.StringVar(&cfg.Gold, "gold", "", "Target attribute holding the human rank")
	flag.StringVar(&cfg.Ties, "ties", defaults.Ties, "Tie policy: minimize, floor, ceiling or middle")
	flag.BoolVar(&cfg.ExcludeTies, "exclude-ties", true, "Exclude gold ties from tau pair counting")
	flag.BoolVar(&cfg.PenalizeTies, "penalize-predicted-ties", true, "Count predicted ties as discordant")
	flag.BoolVar(&cfg.InvertGold, "invert", false, "Invert the gold ranking before comparison")
	flag.IntVar(&cfg.K, "k", 0, "DCG cut-off; 0 uses each segment's length")
	flag.IntVar(&cfg.Workers, "workers", defaults.Workers, "Concurrent segment evaluations; 0 uses all CPUs")
	flag.StringVar(&cfg.Output, "output", defaults.Output, "Output path for the JSON report")

	flag.Parse()
	return cfg
}
