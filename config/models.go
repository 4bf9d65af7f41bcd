package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	GitHub   GitHubConfig   `mapstructure:"github"`
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Settings is loaded from the yaml file named by analysis.settings_file.
	Settings Settings `mapstructure:"-"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.GitHub.Token == "" {
		return errors.New("github.token is required")
	}
	if c.GitHub.GraphQLURL == "" {
		return errors.New("github.graphql_url is required")
	}
	if c.Analysis.Organization == "" || c.Analysis.Repository == "" {
		return errors.New("analysis.organization and analysis.repository are required")
	}
	if c.Analysis.PRCount <= 0 || c.Analysis.BlockCount <= 0 {
		return errors.New("analysis.pr_count and analysis.block_count must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains delivery transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// GitHubConfig describes the GraphQL endpoint and credentials.
type GitHubConfig struct {
	GraphQLURL     string        `mapstructure:"graphql_url"`
	Token          string        `mapstructure:"token"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// AnalysisConfig scopes one analysis run.
type AnalysisConfig struct {
	Organization string `mapstructure:"organization"`
	Repository   string `mapstructure:"repository"`
	// PRCount is the total number of PRs requested per run; BlockCount is
	// the page size per GraphQL call. GitHub caps pages at 100.
	PRCount      int    `mapstructure:"pr_count"`
	BlockCount   int    `mapstructure:"block_count"`
	SettingsFile string `mapstructure:"settings_file"`
	// DependencyBot authors PRs that are skipped entirely; CoverageBot
	// authors timeline comments that are dropped. Neither is reviewer
	// activity.
	DependencyBot string `mapstructure:"dependency_bot"`
	CoverageBot   string `mapstructure:"coverage_bot"`
}
