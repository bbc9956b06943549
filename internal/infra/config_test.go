package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RESULT_BASE_URL", "")
	t.Setenv("PROXY_TARGET", "")
	t.Setenv("PROCESSING_MIN_SECONDS", "")
	t.Setenv("PROCESSING_MAX_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "3000")
	}
	if cfg.ResultBaseURL != "https://example.com/videos" {
		t.Fatalf("ResultBaseURL mismatch: got %q", cfg.ResultBaseURL)
	}
	if cfg.ProcessingMin != 120*time.Second || cfg.ProcessingMax != 180*time.Second {
		t.Fatalf("processing window mismatch: min=%s max=%s", cfg.ProcessingMin, cfg.ProcessingMax)
	}
	if cfg.MaxUploadBytes != 50*1024*1024 {
		t.Fatalf("MaxUploadBytes mismatch: got %d", cfg.MaxUploadBytes)
	}
	if !cfg.SeedDemoKeys {
		t.Fatal("SeedDemoKeys should default to true")
	}
}

func TestLoadConfigHonorsOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PROCESSING_MIN_SECONDS", "1")
	t.Setenv("PROCESSING_MAX_SECONDS", "2")
	t.Setenv("SEED_DEMO_KEYS", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q", cfg.Port)
	}
	if cfg.ProcessingMin != time.Second || cfg.ProcessingMax != 2*time.Second {
		t.Fatalf("processing window mismatch: min=%s max=%s", cfg.ProcessingMin, cfg.ProcessingMax)
	}
	if cfg.SeedDemoKeys {
		t.Fatal("SeedDemoKeys should be disabled")
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	for i, origin := range want {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
}

func TestLoadConfigRejectsInvertedWindow(t *testing.T) {
	t.Setenv("PROCESSING_MIN_SECONDS", "10")
	t.Setenv("PROCESSING_MAX_SECONDS", "5")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig should reject max < min")
	}
}

func TestLoadConfigRejectsRelativeProxyTarget(t *testing.T) {
	t.Setenv("PROXY_TARGET", "not-a-url")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig should reject a relative proxy target")
	}
}
