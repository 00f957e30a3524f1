package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/watchask/watchask/watchask"
)

// generate tunes the question-generation pipeline.
type generate struct {
	Strategy     string        `yaml:"strategy" json:"strategy" mapstructure:"strategy"` // "chunked" or "single-shot"
	ChunkWindow  time.Duration `yaml:"chunk-window" json:"chunk-window" mapstructure:"chunk-window"`
	MaxChunks    int           `yaml:"max-chunks" json:"max-chunks" mapstructure:"max-chunks"`
	MaxQuestions int           `yaml:"max-questions" json:"max-questions" mapstructure:"max-questions"`
}

const (
	strategyChunked    = "chunked"
	strategySingleShot = "single-shot"
)

func (cfg generate) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("generate.strategy", strategyChunked)
	v.SetDefault("generate.chunk-window", watchask.DefaultChunkWindow)
	v.SetDefault("generate.max-chunks", watchask.DefaultMaxChunks)
	v.SetDefault("generate.max-questions", watchask.DefaultMaxQuestions)
}

func (cfg *generate) parseConfigValues() error {
	switch cfg.Strategy {
	case strategyChunked, strategySingleShot:
		return nil
	}
	return fmt.Errorf("bad generate.strategy value '%s' (expected '%s' or '%s')", cfg.Strategy, strategyChunked, strategySingleShot)
}

func (cfg generate) ToGenerateConfig(languages []string) watchask.GenerateConfig {
	return watchask.GenerateConfig{
		Languages:    languages,
		SingleShot:   cfg.Strategy == strategySingleShot,
		MaxQuestions: cfg.MaxQuestions,
		ChunkWindow:  cfg.ChunkWindow,
		MaxChunks:    cfg.MaxChunks,
	}
}
