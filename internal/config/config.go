package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/OleBialas/quarto-docker-render/internal/logging"
	"github.com/OleBialas/quarto-docker-render/internal/paths"
	"github.com/OleBialas/quarto-docker-render/pkg/fileutil"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "QDR"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version     int    `mapstructure:"version" yaml:"version"`
	MaxFileSize int64  `mapstructure:"max_file_size" yaml:"max_file_size"`
	LogFormat   string `mapstructure:"log_format" yaml:"log_format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:     CurrentVersion,
		MaxFileSize: fileutil.DefaultMaxFileSize,
		LogFormat:   string(logging.FormatText),
	}
}

// Init resets Viper and registers defaults, search paths and environment
// bindings. Call it once before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("max_file_size", def.MaxFileSize)
	viper.SetDefault("log_format", def.LogFormat)
}

// Load reads and validates the configuration.
// If path is provided, that file must exist. If path is empty, the default
// location is searched and a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := paths.Validate(path); err != nil {
			return nil, errors.Wrap(err, "config path")
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the config file Load read, or "" if none.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
