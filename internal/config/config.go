package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the tool's configuration model: where the blog feed lives, how
// to authenticate against it, and how output and metrics behave.
type Config struct {
	Blog        BlogConfig        `yaml:"blog"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Output      OutputConfig      `yaml:"output"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type BlogConfig struct {
	// Feed or API endpoint URL. If empty, read from env BLOG_FEED_URL.
	FeedURL string `yaml:"feedURL"`
	// Payload handling: "auto", "jsonfeed", "api" or "rss".
	Source string `yaml:"source"`
}

type CredentialsConfig struct {
	// Bearer token for the authenticated API variant. If empty, read from
	// env BLOG_API_TOKEN.
	APIToken string `yaml:"apiToken"`
}

type OutputConfig struct {
	// Color mode: "auto", "always" or "never".
	Color string `yaml:"color"`
}

type MetricsConfig struct {
	// Prometheus listen address, e.g. ":9090". If empty, read METRICS_ADDR.
	// Empty everywhere disables the metrics server.
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Blog:   BlogConfig{FeedURL: "", Source: "auto"},
		Output: OutputConfig{Color: "auto"},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if c.Blog.FeedURL == "" {
		c.Blog.FeedURL = os.Getenv("BLOG_FEED_URL")
	}
	if c.Credentials.APIToken == "" {
		c.Credentials.APIToken = os.Getenv("BLOG_API_TOKEN")
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
	if c.Blog.Source == "" {
		c.Blog.Source = "auto"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// LoadOrDefault reads the config file when it exists; a missing file falls
// back to defaults plus environment, so the tool runs with nothing but
// BLOG_FEED_URL set.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		cfg = Default()
		cfg.ResolveEnv()
		return cfg, nil
	}
	return cfg, err
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
