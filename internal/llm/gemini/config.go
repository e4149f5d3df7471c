package gemini

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
)

// Config for the Gemini client.
type Config struct {
	APIKey        string        // if empty, falls back to env GEMINI_API_KEY
	Model         string        // e.g., "gemini-2.5-flash"
	MaxRetries    int           // attempts on rate-limit responses
	RetryBaseWait time.Duration // linear backoff base
	Timeout       time.Duration // per-request deadline
}

type Client struct {
	cfg    Config
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger

	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

func (cfg Config) withDefaults() Config {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseWait <= 0 {
		cfg.RetryBaseWait = 30 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	return cfg
}
