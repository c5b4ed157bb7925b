package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"movie-booking-cli/validation"
)

const (
	AppName   = "movie-booking-cli"
	EnvPrefix = "MOVIE_BOOKING"
)

type Config struct {
	Debug       bool   `mapstructure:"debug"`
	LogDir      string `mapstructure:"log_dir" validate:"required"`
	SeatsPerRow int    `mapstructure:"seats_per_row" validate:"min=1,max=20"`
	AltScreen   bool   `mapstructure:"alt_screen"`
	Mouse       bool   `mapstructure:"mouse"`
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", defaultLogDir())
	v.SetDefault("seats_per_row", 5)
	v.SetDefault("alt_screen", true)
	v.SetDefault("mouse", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional config file into v and decodes the result.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if errs := validation.ValidateStruct(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", validation.FormatValidationErrors(errs))
	}
	return &cfg, nil
}

func defaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppName)
	}
	return filepath.Join(dir, AppName)
}
