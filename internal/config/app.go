package config

import (
	"fmt"
)

// Repository represents a GitHub repository
type Repository struct {
	Owner string
	Repo  string
}

// AppConfig represents the configuration for the application
type AppConfig struct {
	Name       string
	Repository Repository
	Version    Version
}

// Version represents the version information for the application
type Version struct {
	Version string
	Commit  string
	Date    string
}

// VersionText returns the version information as a string
func (v *Version) VersionText() string {
	return fmt.Sprintf("v%s : %s (%s)", v.Version, v.Commit, v.Date)
}

// Option is a function that configures an AppConfig
type Option func(*AppConfig)

// NewDefaultConfig returns the vstyle application config
func NewDefaultConfig(opts ...Option) *AppConfig {
	cfg := &AppConfig{
		Name: "vstyle",
		Repository: Repository{
			Owner: "shaharia-lab",
			Repo:  "vstyle",
		},
		Version: Version{
			Version: "0.0.1",
			Commit:  "none",
			Date:    "unknown",
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithVersion sets the build information
func WithVersion(v Version) Option {
	return func(c *AppConfig) {
		c.Version = v
	}
}

// WithName overrides the application name, which also names the home directory
func WithName(name string) Option {
	return func(c *AppConfig) {
		c.Name = name
	}
}
