package config

import "github.com/spf13/viper"

// serve holds the quiz API server options.
type serve struct {
	Host string `yaml:"host" json:"host" mapstructure:"host"`
	Port int    `yaml:"port" json:"port" mapstructure:"port"`
}

func (cfg serve) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("serve.host", "127.0.0.1")
	v.SetDefault("serve.port", 7860)
}
