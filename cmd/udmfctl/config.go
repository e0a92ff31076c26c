package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "udmfctl"
	configFileType = "yaml"
	envPrefix      = "UDMF"

	cfgKeyLogLevel    = "log_level"
	cfgKeyCatalog     = "catalog"
	cfgKeyMemoryLimit = "memory_limit_pages"

	defaultLogLevel = "warn"

	// 4GB of 64KB pages
	maxMemoryPages = 65536
)

// Config is the CLI configuration. Values come from the config file,
// UDMF_* environment variables and flags, in increasing precedence.
type Config struct {
	LogLevel         string `mapstructure:"log_level"`
	Catalog          string `mapstructure:"catalog"`
	MemoryLimitPages uint32 `mapstructure:"memory_limit_pages"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.MemoryLimitPages, validation.Max(uint32(maxMemoryPages))),
	)
}

// loadConfig reads path, or the default config file locations when path
// is empty. A missing default file is not an error. A --log-level flag
// set on cmd overrides the file and the environment.
func loadConfig(path string, cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyCatalog, "")
	v.SetDefault(cfgKeyMemoryLimit, 0)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if f := cmd.Flags().Lookup("log-level"); f != nil {
		if err := v.BindPFlag(cfgKeyLogLevel, f); err != nil {
			return nil, fmt.Errorf("bind flag: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "udmf"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
