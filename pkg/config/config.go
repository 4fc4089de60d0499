// Package config assembles the runtime configuration from defaults, an
// optional YAML config file, WORKHIST_* environment variables and bound
// command line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Configuration keys. Environment variables use the WORKHIST_ prefix with
// dashes mapped to underscores, so "log-level" becomes WORKHIST_LOG_LEVEL.
const (
	KeyOutput     = "output"
	KeyLogLevel   = "log-level"
	KeyXLSCharset = "xls-charset"
)

// DefaultOutput is where the report is written when no output path is given.
const DefaultOutput = "formatted_work_history.txt"

// Config holds the resolved settings for a run.
type Config struct {
	// Output is the report path used when the caller does not name one.
	Output string `mapstructure:"output"`
	// LogLevel is the charmbracelet/log level name.
	LogLevel string `mapstructure:"log-level"`
	// XLSCharset is the codepage for text cells in legacy XLS files.
	XLSCharset string `mapstructure:"xls-charset"`
}

// Build resolves the configuration. cfgFile overrides the default search
// for a workhist.yaml in the working directory; flags, when non-nil, are
// bound so that explicitly set flags win over file and environment values.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// A .env file is optional, load it when present.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyXLSCharset, "utf-8")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("workhist")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("WORKHIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// The searched-for workhist.yaml is optional; a config file the
		// caller asked for by path is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
