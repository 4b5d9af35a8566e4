package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on empty config: %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Errorf("Server.Addr = %q, want :8000", cfg.Server.Addr)
	}
	if cfg.Paths.Uploads != "uploads" || cfg.Paths.Processed != "processed" {
		t.Errorf("upload/processed defaults wrong: %+v", cfg.Paths)
	}
	if cfg.Gemini.TranscribeModel != "gemini-flash-latest" {
		t.Errorf("TranscribeModel = %q", cfg.Gemini.TranscribeModel)
	}
	if cfg.Gemini.PlannerModel != "gemini-2.5-pro" {
		t.Errorf("PlannerModel = %q", cfg.Gemini.PlannerModel)
	}
	if cfg.Retry.MaxRetries != 3 || cfg.Retry.BaseDelaySec != 5 {
		t.Errorf("retry defaults wrong: %+v", cfg.Retry)
	}
	if cfg.BaseDelay() != 5*time.Second {
		t.Errorf("BaseDelay() = %s, want 5s", cfg.BaseDelay())
	}
	if cfg.Merge.Bitrate != "192k" || cfg.Merge.MinOutputBytes != 100 {
		t.Errorf("merge defaults wrong: %+v", cfg.Merge)
	}
}

func TestValidateRejectsNegatives(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"negative retries", func(c *Config) { c.Retry.MaxRetries = -1 }},
		{"negative delay", func(c *Config) { c.Retry.BaseDelaySec = -2 }},
		{"negative rate limit", func(c *Config) { c.Gemini.RateLimitPerMin = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			tt.mod(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted invalid config")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  addr: ":9090"
gemini:
  planner_model: gemini-2.5-flash
retry:
  max_retries: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Gemini.PlannerModel != "gemini-2.5-flash" {
		t.Errorf("PlannerModel = %q", cfg.Gemini.PlannerModel)
	}
	if cfg.Retry.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.Retry.MaxRetries)
	}
	// Unset fields still get defaults.
	if cfg.Gemini.TranscribeModel != "gemini-flash-latest" {
		t.Errorf("TranscribeModel = %q", cfg.Gemini.TranscribeModel)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Server.Addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}
