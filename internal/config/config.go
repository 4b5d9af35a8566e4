package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Retry       RetryConfig       `yaml:"retry"`
	Merge       MergeConfig       `yaml:"merge"`
	Performance PerformanceConfig `yaml:"performance"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type PathsConfig struct {
	Uploads   string `yaml:"uploads"`
	Processed string `yaml:"processed"`
	Static    string `yaml:"static"`
	Inbox     string `yaml:"inbox"`
	Output    string `yaml:"output"`
	Archived  string `yaml:"archived"`
}

type GeminiConfig struct {
	TranscribeModel string `yaml:"transcribe_model"`
	PlannerModel    string `yaml:"planner_model"`
	RateLimitPerMin int    `yaml:"rate_limit_per_min"`
}

type RetryConfig struct {
	MaxRetries   int `yaml:"max_retries"`
	BaseDelaySec int `yaml:"base_delay_sec"`
}

type MergeConfig struct {
	Bitrate        string `yaml:"bitrate"`
	MinOutputBytes int64  `yaml:"min_output_bytes"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// APIKey reads the Gemini API key from the process environment. The key is
// deliberately never part of the YAML file.
func (c *Config) APIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// BaseDelay returns the retry base delay as a duration.
func (c *Config) BaseDelay() time.Duration {
	return time.Duration(c.Retry.BaseDelaySec) * time.Second
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Paths.Uploads == "" {
		c.Paths.Uploads = "uploads"
	}
	if c.Paths.Processed == "" {
		c.Paths.Processed = "processed"
	}
	if c.Paths.Static == "" {
		c.Paths.Static = "static"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Gemini.TranscribeModel == "" {
		c.Gemini.TranscribeModel = "gemini-flash-latest"
	}
	if c.Gemini.PlannerModel == "" {
		c.Gemini.PlannerModel = "gemini-2.5-pro"
	}
	if c.Gemini.RateLimitPerMin == 0 {
		c.Gemini.RateLimitPerMin = 10
	}
	if c.Gemini.RateLimitPerMin < 0 {
		return fmt.Errorf("gemini.rate_limit_per_min must be positive")
	}
	if c.Retry.MaxRetries == 0 {
		c.Retry.MaxRetries = 3
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must be positive")
	}
	if c.Retry.BaseDelaySec == 0 {
		c.Retry.BaseDelaySec = 5
	}
	if c.Retry.BaseDelaySec < 0 {
		return fmt.Errorf("retry.base_delay_sec must be positive")
	}
	if c.Merge.Bitrate == "" {
		c.Merge.Bitrate = "192k"
	}
	if c.Merge.MinOutputBytes == 0 {
		c.Merge.MinOutputBytes = 100
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return nil
}
