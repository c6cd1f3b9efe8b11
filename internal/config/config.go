// Package config loads service settings from config.yaml and CATALOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Business BusinessConfig `mapstructure:"business"`
	Import   ImportConfig   `mapstructure:"import"`
	Log      LogConfig      `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type CatalogConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig enables the query cache when URL is set.
type RedisConfig struct {
	URL string        `mapstructure:"url"`
	TTL time.Duration `mapstructure:"ttl"`
}

type BusinessConfig struct {
	Name         string `mapstructure:"name"`
	Phone        string `mapstructure:"phone"`
	Location     string `mapstructure:"location"`
	SiteURL      string `mapstructure:"site_url"`
	FacebookPage string `mapstructure:"facebook_page"`
}

// ImportConfig limits CSV uploads per client IP.
type ImportConfig struct {
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Burst         int     `mapstructure:"burst"`
	MaxUploadMB   int64   `mapstructure:"max_upload_mb"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("catalog.source", SourceFile)
	v.SetDefault("catalog.path", "data/products.json")
	v.SetDefault("database.url", "")
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("business.name", "Siestar Furnitures")
	v.SetDefault("business.phone", "254728260288")
	v.SetDefault("business.location", "Nairobi, Kenya")
	v.SetDefault("business.site_url", "")
	v.SetDefault("business.facebook_page", "https://www.facebook.com/siestherfurniture/")
	v.SetDefault("import.rate_per_second", 1.0)
	v.SetDefault("import.burst", 5)
	v.SetDefault("import.max_upload_mb", 10)
	v.SetDefault("log.debug", false)
}

// Load reads the config file at path, or ./config.yaml when path is empty, and
// overlays CATALOG_* environment variables (CATALOG_HTTP_ADDR, CATALOG_REDIS_URL, ...).
// A missing default config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.Path == "" {
			return errors.New("catalog.path is required when catalog.source is file")
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return errors.New("database.url is required when catalog.source is postgres")
		}
	default:
		return fmt.Errorf("unknown catalog.source %q", c.Catalog.Source)
	}
	if c.Business.Phone == "" {
		return errors.New("business.phone is required")
	}
	return nil
}
