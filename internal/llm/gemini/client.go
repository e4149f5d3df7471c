package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// NewClient builds a Gemini-backed completer.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Client{
		cfg:    cfg,
		client: gc,
		model:  gc.GenerativeModel(cfg.Model),
		logger: logger,
		sleep:  sleepContext,
	}, nil
}

// Complete sends one prompt and returns the concatenated text parts of the
// first candidate. Rate-limit responses are retried with linear backoff;
// any other error fails immediately.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	c.logger.Info("llm.complete.start",
		"model", c.cfg.Model,
		"prompt_len", len(prompt),
	)

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		out, err := c.generate(ctx, prompt)
		if err == nil {
			c.logger.Info("llm.complete.ok",
				"model", c.cfg.Model,
				"attempt", attempt,
				"response_len", len(out),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return out, nil
		}
		if !isRateLimited(err) {
			c.logger.Error("llm.complete.error",
				"model", c.cfg.Model, "attempt", attempt, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return "", err
		}

		lastErr = err
		wait := c.cfg.RetryBaseWait * time.Duration(attempt)
		c.logger.Warn("llm.complete.rate_limited",
			"model", c.cfg.Model, "attempt", attempt,
			"max_retries", c.cfg.MaxRetries, "wait", wait.String(),
		)
		if attempt < c.cfg.MaxRetries {
			if err := c.sleep(ctx, wait); err != nil {
				return "", err
			}
		}
	}

	c.logger.Error("llm.complete.quota_exhausted",
		"model", c.cfg.Model, "retries", c.cfg.MaxRetries,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return "", fmt.Errorf("gemini quota exceeded after %d retries: %w", c.cfg.MaxRetries, lastErr)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no response candidates from gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("empty text response from gemini")
	}
	return out, nil
}

// sleepContext waits for d but returns early when ctx is cancelled, so a
// batch shutdown does not sit out a full backoff window.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isRateLimited(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == 429
}

// Close closes the underlying Gemini client.
func (c *Client) Close() error {
	return c.client.Close()
}
