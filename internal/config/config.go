// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Dedup struct {
		StrictMode            bool     `yaml:"strict_mode"`
		TitleSimilarity       float64  `yaml:"title_similarity"`
		CompanySimilarity     float64  `yaml:"company_similarity"`
		LocationContradiction float64  `yaml:"location_contradiction"`
		DaysLookback          int      `yaml:"days_lookback"`
		CompanySuffixes       []string `yaml:"company_suffixes"`
		TitleNoiseWords       []string `yaml:"title_noise_words"`
	} `yaml:"dedup"`

	Audit struct {
		MaxConcurrentUsers int     `yaml:"max_concurrent_users"`
		AuditsPerSecond    float64 `yaml:"audits_per_second"`
	} `yaml:"audit"`
}

// Default returns the built-in config used when no file overrides it.
func Default() Config {
	var cfg Config
	cfg.Dedup.TitleSimilarity = 0.85
	cfg.Dedup.CompanySimilarity = 0.90
	cfg.Dedup.LocationContradiction = 0.50
	cfg.Dedup.DaysLookback = 30
	cfg.Dedup.CompanySuffixes = []string{
		"inc", "incorporated", "corp", "corporation", "llc", "ltd", "co",
		"company", "group", "enterprises",
	}
	cfg.Dedup.TitleNoiseWords = []string{"remote", "urgent", "apply", "now", "hiring"}
	cfg.Audit.MaxConcurrentUsers = 4
	cfg.Audit.AuditsPerSecond = 8
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
