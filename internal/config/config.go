package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the locsql settings.
type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Inserts  InsertsConfig  `mapstructure:"inserts"`
	Prefixes PrefixesConfig `mapstructure:"prefixes"`
	Log      LogConfig      `mapstructure:"log"`
}

// InputConfig locates the locations CSV.
type InputConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig is where generated scripts are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// InsertsConfig configures the batched INSERT generator.
type InsertsConfig struct {
	BatchSize  int    `mapstructure:"batch_size"`
	FilePrefix string `mapstructure:"file_prefix"`
}

// PrefixesConfig configures the postcode prefix aggregator.
type PrefixesConfig struct {
	Length int    `mapstructure:"length"`
	File   string `mapstructure:"file"`
}

// LogConfig configures zerolog.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads locsql.yaml from path when present, then LOCSQL_* environment variables.
func LoadConfig(path string) (*Config, error) {
	return LoadConfigWith(viper.New(), path)
}

// LoadConfigWith is LoadConfig on a caller-supplied viper instance, so flags bound to v take
// precedence over the file and the environment.
func LoadConfigWith(v *viper.Viper, path string) (*Config, error) {
	v.SetConfigName("locsql")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix("LOCSQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("input.path", "locations.csv")
	v.SetDefault("output.dir", "scripts")
	v.SetDefault("inserts.batch_size", 500)
	v.SetDefault("inserts.file_prefix", "insert_locations_batch_")
	v.SetDefault("prefixes.length", 4)
	v.SetDefault("prefixes.file", "postcode_prefixes.sql")
	v.SetDefault("log.level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings that cannot produce output.
func (c *Config) Validate() error {
	switch {
	case c.Input.Path == "":
		return errors.New("config: input.path cannot be empty")
	case c.Output.Dir == "":
		return errors.New("config: output.dir cannot be empty")
	case c.Inserts.BatchSize <= 0:
		return fmt.Errorf("config: inserts.batch_size must be positive, got %d", c.Inserts.BatchSize)
	case c.Inserts.FilePrefix == "":
		return errors.New("config: inserts.file_prefix cannot be empty")
	case c.Prefixes.Length <= 0:
		return fmt.Errorf("config: prefixes.length must be positive, got %d", c.Prefixes.Length)
	case c.Prefixes.File == "":
		return errors.New("config: prefixes.file cannot be empty")
	}
	return nil
}
