package spec

// EvalSpec describes one evaluation run: which corpora to score and how
// the metrics are configured.
type EvalSpec struct {
	Jobs    []Job         `yaml:"jobs"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Job names one corpus file and the two target attributes holding the
// predicted and the gold ranks.
type Job struct {
	Name      string `yaml:"name"`
	Corpus    string `yaml:"corpus"`
	Predicted string `yaml:"predicted"`
	Gold      string `yaml:"gold"`
}

type MetricsConfig struct {
	Ties                  string `yaml:"ties"`
	ExcludeTies           *bool  `yaml:"exclude_ties"`
	PenalizePredictedTies *bool  `yaml:"penalize_predicted_ties"`
	InvertGold            bool   `yaml:"invert_gold"`
	K                     int    `yaml:"k"`
	Workers               int    `yaml:"workers"`
}
