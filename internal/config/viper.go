package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/gnc-reports/internal/common"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by InitializeConfig,
// for example GNC_LOG_LEVEL for log.level.
const EnvPrefix = "GNC"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Report struct {
		Format       string `mapstructure:"format" yaml:"format"`
		IncludeZero  bool   `mapstructure:"include_zero" yaml:"include_zero"`
		BalanceYears int    `mapstructure:"balance_years" yaml:"balance_years"`
	} `mapstructure:"report" yaml:"report"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Parser struct {
		Strict bool `mapstructure:"strict" yaml:"strict"`
	} `mapstructure:"parser" yaml:"parser"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig loads defaults, then the optional config.yaml, then GNC_*
// environment variables, each overriding the previous one.
func InitializeConfig() (*Config, error) {
	return load("")
}

// LoadFromFile is InitializeConfig with an explicit configuration file.
func LoadFromFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.gnc-reports")
		v.AddConfigPath(".gnc-reports")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration made of the defaults only.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Defaults always decode.
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)

	v.SetDefault("report.format", "text")
	v.SetDefault("report.include_zero", false)
	v.SetDefault("report.balance_years", 3)

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("parser.strict", true)

	v.SetDefault("batch.workers", 4)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != logging.FormatText && config.Log.Format != logging.FormatJSON {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidOutputFormat(config.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}

	if config.Report.BalanceYears < 1 || config.Report.BalanceYears > 100 {
		return fmt.Errorf("report.balance_years must be between 1 and 100, got: %d", config.Report.BalanceYears)
	}

	if err := validation.IsValidDelimiter(config.CSV.Delimiter); err != nil {
		return err
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 64 {
		return fmt.Errorf("batch.workers must be between 1 and 64, got: %d", config.Batch.Workers)
	}

	return nil
}

// ConfigureLoggingFromConfig creates the application logger from the log settings.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return common.ParseDelimiter(c.CSV.Delimiter)
}
