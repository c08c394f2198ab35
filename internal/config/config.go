// Package config holds the process configuration: fetch behavior, crawl
// budget and the AI provider credential. The config is loaded once at
// startup and passed explicitly into the stages that need it.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full tool configuration.
type Config struct {
	Fetch      FetchConfig      `yaml:"fetch"`
	Crawl      CrawlConfig      `yaml:"crawl"`
	AI         AIConfig         `yaml:"ai"`
	Signatures SignaturesConfig `yaml:"signatures"`
}

// FetchConfig configures the HTTP fetcher.
type FetchConfig struct {
	// TimeoutSeconds bounds one page fetch.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// UserAgent overrides the browser-like default when set.
	UserAgent string `yaml:"user_agent"`
	// MaxBodyBytes caps how much of a response is read. Zero keeps
	// the default cap.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// CrawlConfig configures the multi-page crawl.
type CrawlConfig struct {
	// MaxPages is the total page budget including the primary page.
	MaxPages int `yaml:"max_pages"`
}

// AIConfig configures the AI interpretation stage. An empty APIKey
// disables the stage; the run continues with the inventory alone.
type AIConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SignaturesConfig points at a custom signature table file. Empty means
// the embedded default table.
type SignaturesConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Fetch: FetchConfig{TimeoutSeconds: 10},
		Crawl: CrawlConfig{MaxPages: 5},
		AI: AIConfig{
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 60,
		},
	}
}

// Load reads a YAML config file and applies environment overrides. An
// empty path skips the file and uses defaults plus environment; a path
// that cannot be read is an error, so a mistyped --config surfaces
// instead of silently falling back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("could not read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("could not decode config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv resolves the provider credential from the environment. The
// environment wins over the file so keys never need to live on disk.
func (c *Config) applyEnv() {
	for _, name := range []string{"WOOSTACK_API_KEY", "GEMINI_API_KEY"} {
		if value := os.Getenv(name); value != "" {
			c.AI.APIKey = value
			break
		}
	}
	if model := os.Getenv("WOOSTACK_MODEL"); model != "" {
		c.AI.Model = model
	}
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	if c.Fetch.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// AITimeout returns the provider call timeout as a duration.
func (c *Config) AITimeout() time.Duration {
	if c.AI.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

// AIEnabled reports whether the AI stage has a credential.
func (c *Config) AIEnabled() bool {
	return c.AI.APIKey != ""
}
