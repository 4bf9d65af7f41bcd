// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed
// defaults and validation, then loads the reviewer-team settings file.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	settings, err := LoadSettings(cfg.Analysis.SettingsFile)
	if err != nil {
		return nil, err
	}
	cfg.Settings = *settings

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 30*time.Second)

	v.SetDefault("github.graphql_url", "https://api.github.com/graphql")
	v.SetDefault("github.request_timeout", 30*time.Second)

	v.SetDefault("analysis.pr_count", 100)
	v.SetDefault("analysis.block_count", 50)
	v.SetDefault("analysis.settings_file", "config/settings.yaml")
	v.SetDefault("analysis.dependency_bot", "pyup-bot")
	v.SetDefault("analysis.coverage_bot", "codecov")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"github.graphql_url",
		"github.token",
		"github.request_timeout",
		"analysis.organization",
		"analysis.repository",
		"analysis.pr_count",
		"analysis.block_count",
		"analysis.settings_file",
		"analysis.dependency_bot",
		"analysis.coverage_bot",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
