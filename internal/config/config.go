package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"hashcrack/internal/core/domain"
)

const (
	envPrefix         = "HASHCRACK"
	defaultConfigName = ".hashcrack"
	maxDefaultWorkers = 6
)

type Config struct {
	Algorithm  string       `mapstructure:"algorithm"`
	Charset    string       `mapstructure:"charset"`
	MinLength  int          `mapstructure:"min_length"`
	MaxLength  int          `mapstructure:"max_length"`
	Progress   bool         `mapstructure:"progress"`
	LogLevel   string       `mapstructure:"log_level"`
	ReportFile string       `mapstructure:"report_file"`
	Workers    int          `mapstructure:"workers"`
	Report     ReportConfig `mapstructure:"report"`
}

// ReportConfig controls how often a running attack reports its stats.
type ReportConfig struct {
	DictionaryInterval    int64 `mapstructure:"dictionary_interval"`
	CombinatorialInterval int64 `mapstructure:"combinatorial_interval"`
}

func NewDefaultConfig() *Config {
	workers := runtime.NumCPU()
	if workers > maxDefaultWorkers {
		workers = maxDefaultWorkers
	}
	return &Config{
		Algorithm: string(domain.DefaultAlgorithm),
		Charset:   domain.DefaultCharset,
		MinLength: domain.DefaultMinLength,
		MaxLength: domain.DefaultMaxLength,
		Progress:  true,
		LogLevel:  "warn",
		Workers:   workers,
		Report: ReportConfig{
			DictionaryInterval:    domain.DictionaryReportInterval,
			CombinatorialInterval: domain.CombinatorialReportInterval,
		},
	}
}

// Load reads defaults, then the config file, then HASHCRACK_* environment
// variables. An empty path searches $HOME and the working directory for
// .hashcrack.yaml; a missing file there is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v, NewDefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("algorithm", d.Algorithm)
	v.SetDefault("charset", d.Charset)
	v.SetDefault("min_length", d.MinLength)
	v.SetDefault("max_length", d.MaxLength)
	v.SetDefault("progress", d.Progress)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("report_file", d.ReportFile)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("report.dictionary_interval", d.Report.DictionaryInterval)
	v.SetDefault("report.combinatorial_interval", d.Report.CombinatorialInterval)
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Report.DictionaryInterval < 1 || c.Report.CombinatorialInterval < 1 {
		return fmt.Errorf("report intervals must be positive")
	}
	return nil
}
