// Package config loads and validates aggregator configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/remotestarter/jobfeed/internal/feed"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Sources  []SourceConfig `mapstructure:"sources"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SourceConfig declares one external feed or API to ingest.
type SourceConfig struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
	Kind string `mapstructure:"kind"`
}

// HTTPConfig configures outbound fetch behavior.
type HTTPConfig struct {
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
	UserAgent        string `mapstructure:"user_agent"`
	MaxRedirects     int    `mapstructure:"max_redirects"`
	RateLimitDelayMs int    `mapstructure:"rate_limit_delay_ms"`
}

// PipelineConfig governs normalization behavior.
type PipelineConfig struct {
	MaxJobs       int  `mapstructure:"max_jobs"`
	MaxTags       int  `mapstructure:"max_tags"`
	ExcerptLength int  `mapstructure:"excerpt_length"`
	BeginnerOnly  bool `mapstructure:"beginner_only"`
}

// OutputConfig sets where the result document lands.
type OutputConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JOBFEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sources", []map[string]any{
		{"name": "weworkremotely", "url": "https://weworkremotely.com/remote-jobs.rss", "kind": "rss"},
		{"name": "remotive", "url": "https://remotive.com/api/remote-jobs", "kind": "json"},
	})
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.user_agent", "jobfeed-aggregator/1.0 (+https://github.com/remotestarter/jobfeed)")
	v.SetDefault("http.max_redirects", 5)
	v.SetDefault("http.rate_limit_delay_ms", 500)
	v.SetDefault("pipeline.max_jobs", 2000)
	v.SetDefault("pipeline.max_tags", 6)
	v.SetDefault("pipeline.excerpt_length", 180)
	v.SetDefault("pipeline.beginner_only", true)
	v.SetDefault("output.path", "data/jobs.json")
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one source must be configured")
	}
	names := make(map[string]struct{}, len(c.Sources))
	for _, s := range c.Sources {
		if s.Name == "" {
			return fmt.Errorf("source name must not be empty")
		}
		if _, dup := names[s.Name]; dup {
			return fmt.Errorf("duplicate source name %q", s.Name)
		}
		names[s.Name] = struct{}{}
		if s.URL == "" {
			return fmt.Errorf("source %q: url must not be empty", s.Name)
		}
		if s.Kind != string(feed.KindRSS) && s.Kind != string(feed.KindJSON) {
			return fmt.Errorf("source %q: kind must be %q or %q", s.Name, feed.KindRSS, feed.KindJSON)
		}
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.Pipeline.MaxJobs <= 0 {
		return fmt.Errorf("pipeline.max_jobs must be > 0")
	}
	if c.Pipeline.ExcerptLength <= 0 {
		return fmt.Errorf("pipeline.excerpt_length must be > 0")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	return nil
}

// FeedSources converts the configured sources into domain values.
func (c Config) FeedSources() []feed.Source {
	sources := make([]feed.Source, 0, len(c.Sources))
	for _, s := range c.Sources {
		sources = append(sources, feed.Source{
			Name: s.Name,
			URL:  s.URL,
			Kind: feed.SourceKind(s.Kind),
		})
	}
	return sources
}

// HTTPTimeout converts the timeout setting into a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// RateLimitDelay converts the backoff setting into a duration.
func (c Config) RateLimitDelay() time.Duration {
	return time.Duration(c.HTTP.RateLimitDelayMs) * time.Millisecond
}
