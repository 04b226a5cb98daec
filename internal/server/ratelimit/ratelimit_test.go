package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/analyses", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		},
	}
}

func TestLimiterBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/analyses", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 10, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/analyses", "POST")
	assert.True(t, allowed)

	// Burst of 2 exhausted; refill at 10/hour is far too slow to matter here.
	allowed, info = limiter.Allow("1.2.3.4", "/analyses", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterPerClientIsolation(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("1.1.1.1", "/analyses", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("1.1.1.1", "/analyses", "POST")
	assert.False(t, allowed)

	// A different client still has a full bucket.
	allowed, _ = limiter.Allow("2.2.2.2", "/analyses", "POST")
	assert.True(t, allowed)
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/analyses", "POST")
		require.True(t, allowed)
	}
}

func TestLimiterWhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	cfg.Blacklist["6.6.6.6"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("9.9.9.9", "/analyses", "POST")
		require.True(t, allowed)
	}

	allowed, _ := limiter.Allow("6.6.6.6", "/health", "GET")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/analyses", Method: "POST", Limit: 10},
		{Path: "/analyses/", Method: "GET", Limit: 50},
	}

	exact := MatchEndpoint("/analyses", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 10, exact.Limit)

	prefix := MatchEndpoint("/analyses/abc-123", "GET", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 50, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/unknown", "GET", configs))

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Equal(t, 0, health.Limit, "health endpoint is unlimited")
}
