package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{APIKey: "k"}.withDefaults()
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.RetryBaseWait)
	assert.Equal(t, 120*time.Second, cfg.Timeout)
}

func TestSleepContextReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleepContext(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleepContextElapses(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(&googleapi.Error{Code: 429}))
	assert.True(t, isRateLimited(errors.Join(errors.New("wrapped"), &googleapi.Error{Code: 429})))
	assert.False(t, isRateLimited(&googleapi.Error{Code: 500}))
	assert.False(t, isRateLimited(errors.New("network down")))
	assert.False(t, isRateLimited(nil))
}
