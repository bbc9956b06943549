package infra

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	PublicDir          string
	UploadDir          string
	ResultBaseURL      string
	ProxyTarget        string
	ProcessingMin      time.Duration
	ProcessingMax      time.Duration
	WebhookTimeout     time.Duration
	MaxUploadBytes     int64
	RateLimitPerMin    int
	CORSAllowedOrigins []string
	SeedDemoKeys       bool
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		PublicDir:        getEnv("PUBLIC_DIR", "./public"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		ResultBaseURL:    getEnv("RESULT_BASE_URL", "https://example.com/videos"),
		ProxyTarget:      getEnv("PROXY_TARGET", "https://example.com"),
		ProcessingMin:    time.Second * time.Duration(getEnvInt("PROCESSING_MIN_SECONDS", 120)),
		ProcessingMax:    time.Second * time.Duration(getEnvInt("PROCESSING_MAX_SECONDS", 180)),
		WebhookTimeout:   time.Second * time.Duration(getEnvInt("WEBHOOK_TIMEOUT_SECONDS", 10)),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_MB", 50)) * 1024 * 1024,
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		SeedDemoKeys:     getEnvBool("SEED_DEMO_KEYS", true),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if origins := getEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	if cfg.ProcessingMin < 0 || cfg.ProcessingMax < cfg.ProcessingMin {
		return nil, fmt.Errorf("invalid processing window: min=%s max=%s", cfg.ProcessingMin, cfg.ProcessingMax)
	}
	if parsed, err := url.Parse(cfg.ProxyTarget); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("PROXY_TARGET must be an absolute URL, got %q", cfg.ProxyTarget)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
