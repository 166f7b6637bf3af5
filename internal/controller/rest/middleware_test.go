package rest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterPerClient(t *testing.T) {
	rl := NewRateLimiter(1)
	base := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	now := base
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"))

	now = base.Add(time.Minute)
	assert.True(t, rl.Allow("1.1.1.1"))
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(5)
	base := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	now := base
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = base.Add(20 * time.Minute)
	rl.Allow("fresh")

	assert.Equal(t, 1, rl.Sweep(now, 10*time.Minute))
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "fresh")
}

func TestClassifyUnknownErrorIsInternal(t *testing.T) {
	status, msg := classify(assert.AnError)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", msg)
}
