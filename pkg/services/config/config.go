// Package config loads the service configuration from an optional config
// file plus environment overrides. Read once at startup; the resulting
// struct is passed by value and never mutated.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type VTEX struct {
	Account          string `mapstructure:"account"`
	Environment      string `mapstructure:"environment"`
	AppKey           string `mapstructure:"app_key"`
	AppToken         string `mapstructure:"app_token"`
	MasterDataEntity string `mapstructure:"master_data_entity"`
}

type Thresholds struct {
	// PercentagePct is the critical percentage threshold (default 0.5).
	PercentagePct float64 `mapstructure:"percentage"`
	// Absolute is the critical absolute threshold in currency units
	// (default 50).
	Absolute float64 `mapstructure:"absolute"`
}

type Config struct {
	Addr        string     `mapstructure:"addr"`
	UseMockData bool       `mapstructure:"use_mock_data"`
	VTEX        VTEX       `mapstructure:"vtex"`
	Thresholds  Thresholds `mapstructure:"thresholds"`
	WatchTags   []string   `mapstructure:"watch_tags"`
}

// Load reads configuration from the given file (optional) with environment
// variables taking precedence (prefix BUDGET_ATLAS, dots become underscores).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("use_mock_data", false)
	v.SetDefault("vtex.account", "")
	v.SetDefault("vtex.environment", "vtexcommercestable")
	v.SetDefault("vtex.app_key", "")
	v.SetDefault("vtex.app_token", "")
	v.SetDefault("vtex.master_data_entity", "budget")
	v.SetDefault("thresholds.percentage", 0.5)
	v.SetDefault("thresholds.absolute", 50)

	v.SetEnvPrefix("BUDGET_ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.UseMockData {
		return nil
	}
	if c.VTEX.Account == "" {
		return fmt.Errorf("vtex.account is required when mock data is disabled")
	}
	if c.VTEX.AppKey == "" || c.VTEX.AppToken == "" {
		return fmt.Errorf("vtex.app_key and vtex.app_token are required when mock data is disabled")
	}
	return nil
}

// BaseURL builds the VTEX API base URL for the configured account.
func (v VTEX) BaseURL() string {
	return fmt.Sprintf("https://%s.%s.com.br", v.Account, v.Environment)
}
