// Package config loads and saves engine configuration as TOML or msgpack.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/rano-oss/libchinese-go/internal/utils"
)

// ScoringConfig controls fuzzy matching and n-gram interpolation weights.
type ScoringConfig struct {
	Fuzzy                      []string `toml:"fuzzy"`
	UnigramWeight              float64  `toml:"unigram_weight"`
	BigramWeight               float64  `toml:"bigram_weight"`
	TrigramWeight              float64  `toml:"trigram_weight"`
	SortByPhraseLength         bool     `toml:"sort_by_phrase_length"`
	SortWithoutLongerCandidate bool     `toml:"sort_without_longer_candidate"`
	FuzzyPenalty               float64  `toml:"fuzzy_penalty"`
}

// RuntimeConfig controls session/cache/commit behavior.
type RuntimeConfig struct {
	MaxCacheSize               int      `toml:"max_cache_size"`
	AutoSuggestion             bool     `toml:"auto_suggestion"`
	MinSuggestionTriggerLength int      `toml:"min_suggestion_trigger_length"`
	IsFullwidth                bool     `toml:"is_fullwidth"`
	SelectionKeys              string   `toml:"selection_keys"`
	MaskedPhrases              []string `toml:"masked_phrases"`
}

// Config is the top-level engine configuration, grouped the way wordserve
// groups Server/Dict/CLI.
type Config struct {
	Scoring ScoringConfig `toml:"scoring"`
	Runtime RuntimeConfig `toml:"runtime"`
}

// DefaultConfig returns the default configuration per the engine's option table.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Fuzzy:         nil,
			UnigramWeight: 0.6,
			BigramWeight:  0.3,
			TrigramWeight: 0.1,
			FuzzyPenalty:  1.0,
		},
		Runtime: RuntimeConfig{
			MaxCacheSize:               1000,
			AutoSuggestion:             true,
			MinSuggestionTriggerLength: 2,
			SelectionKeys:              "123456789",
		},
	}
}

// InitConfig loads the config at configPath, creating it with defaults if
// missing. On any load error it falls back to defaults rather than failing.
func InitConfig(configPath string) (*Config, error) {
	dir := filepath.Dir(configPath)
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("config: ensure dir %s: %w", dir, err)
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, fmt.Errorf("config: save default: %w", err)
		}
		return cfg, nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", configPath, err)
	}
	return &cfg, nil
}

// SaveConfig writes cfg as TOML to configPath.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// Update selectively overwrites runtime fields and persists the result.
// Nil pointers leave the corresponding field untouched.
func Update(configPath string, maxCacheSize *int, autoSuggestion *bool, isFullwidth *bool, selectionKeys *string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	if maxCacheSize != nil {
		cfg.Runtime.MaxCacheSize = *maxCacheSize
	}
	if autoSuggestion != nil {
		cfg.Runtime.AutoSuggestion = *autoSuggestion
	}
	if isFullwidth != nil {
		cfg.Runtime.IsFullwidth = *isFullwidth
	}
	if selectionKeys != nil {
		cfg.Runtime.SelectionKeys = *selectionKeys
	}

	return SaveConfig(cfg, configPath)
}

// LoadBinary decodes a msgpack-serialized Config, for fast boot paths that
// skip TOML parsing.
func LoadBinary(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := msgpack.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveBinary msgpack-serializes cfg to path.
func SaveBinary(cfg *Config, path string) error {
	data, err := msgpack.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
