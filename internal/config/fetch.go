package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/watchask/watchask/watchask/transcript"
)

// fetch contains the caption download options.
type fetch struct {
	Languages []string      `yaml:"languages" json:"languages" mapstructure:"languages"` // caption languages to try, in preference order
	BaseURL   string        `yaml:"base-url" json:"base-url" mapstructure:"base-url"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

func (cfg fetch) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("fetch.languages", transcript.DefaultLanguages)
	v.SetDefault("fetch.base-url", "")
	v.SetDefault("fetch.timeout", 30*time.Second)
}

func (cfg fetch) ToFetcherConfig() transcript.Config {
	return transcript.Config{
		Languages: cfg.Languages,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
	}
}
