package config

import (
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/watchask/watchask/internal"
	"github.com/watchask/watchask/watchask/transcript/cache"
)

// cacheConfig controls the on-disk transcript cache.
type cacheConfig struct {
	Dir    string        `yaml:"dir" json:"dir" mapstructure:"dir"`
	MaxAge time.Duration `yaml:"max-age" json:"max-age" mapstructure:"max-age"`
}

func (cfg cacheConfig) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("cache.dir", path.Join(xdg.CacheHome, internal.ApplicationName, "transcripts"))
	v.SetDefault("cache.max-age", cache.DefaultMaxAge)
}

func (cfg cacheConfig) ToCuratorConfig() cache.Config {
	return cache.Config{
		Dir:    cfg.Dir,
		MaxAge: cfg.MaxAge,
	}
}
