package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/watchask/watchask/watchask/qgen"
)

// gemini holds the model service options. The API key is intentionally kept out
// of the config String() output.
type gemini struct {
	APIKey   string        `yaml:"-" json:"-" mapstructure:"api-key"`
	Model    string        `yaml:"model" json:"model" mapstructure:"model"`
	Endpoint string        `yaml:"endpoint" json:"endpoint" mapstructure:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

func (cfg gemini) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("gemini.api-key", "")
	v.SetDefault("gemini.model", qgen.DefaultModel)
	v.SetDefault("gemini.endpoint", "")
	v.SetDefault("gemini.timeout", 60*time.Second)
}

func (cfg *gemini) parseConfigValues() error {
	// honor the conventional environment variable when the prefixed one is not set
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return nil
}

func (cfg gemini) ToClientConfig() qgen.ClientConfig {
	return qgen.ClientConfig{
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
	}
}
