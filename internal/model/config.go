package model

import (
	"runtime"
	"time"
)

// Config is the full runtime configuration.
// Layered sources (highest to lowest priority): CLI flags, SKUFORGE_*
// environment variables, ~/.skuforge/config.yaml, DefaultConfig.
type Config struct {
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Noise       NoiseConfig       `yaml:"noise" mapstructure:"noise"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Sink        SinkConfig        `yaml:"sink" mapstructure:"sink"`
}

// OutputConfig controls where and how artifacts are written.
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`         // Directory for per-document JSON artifacts
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"` // Per-row progress on stderr
}

// ConcurrencyConfig controls the batch worker pool.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // Documents converted in parallel
}

// NoiseConfig carries the empirically tuned row-noise thresholds. The
// defaults reproduce the source corpus; both are expected to need
// adjustment for other corpora, which is why they are configuration
// rather than constants.
type NoiseConfig struct {
	Denylist   []string `yaml:"denylist" mapstructure:"denylist"`         // Case-insensitive substrings that mark a row as noise
	MaxCellLen int      `yaml:"max_cell_len" mapstructure:"max_cell_len"` // Cells at or beyond this length mark the row as noise
}

// HTTPConfig controls remote document fetching.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy     string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// RateLimitConfig throttles fetches per remote host.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls the layered fetch cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// SinkConfig controls the optional SQLite catalog sink.
type SinkConfig struct {
	SQLitePath string `yaml:"sqlite_path" mapstructure:"sqlite_path"` // Empty disables the sink
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir: "./exported-jsons",
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Noise: NoiseConfig{
			// Watermark/location strings leaked into cells by the
			// upstream table extractor, observed in the source corpus.
			Denylist:   []string{"mumbai", "tejeet", "price list"},
			MaxCellLen: 120,
		},
		HTTP: HTTPConfig{
			Timeout:       2 * time.Minute,
			UserAgent:     "Skuforge/0.1 (+https://github.com/skuforge/skuforge)",
			MaxBodyBytes:  10_000_000,
			RespectRobots: true,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2.0,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "./.skuforge-cache",
			TTL:     24 * time.Hour,
		},
		Sink: SinkConfig{},
	}
}
