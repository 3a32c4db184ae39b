package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "modern-store", cfg.StorageKey)
	assert.Equal(t, time.Second, cfg.CheckoutLatency)
	assert.Equal(t, 24*time.Hour, cfg.SessionTokenExpiry)
	assert.NotEmpty(t, cfg.StorageDir)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORAGE_KEY", "other-slot")
	t.Setenv("CHECKOUT_LATENCY", "250ms")
	t.Setenv("SYNC_WRITES_PER_SEC", "10")
	t.Setenv("SYNC_BURST", "3")

	cfg := LoadConfig()

	assert.Equal(t, "other-slot", cfg.StorageKey)
	assert.Equal(t, 250*time.Millisecond, cfg.CheckoutLatency)
	assert.Equal(t, 10.0, cfg.SyncWritesPerSec)
	assert.Equal(t, 3, cfg.SyncBurst)
}

func TestEnvHelpersFallBackOnBadInput(t *testing.T) {
	t.Setenv("BAD_DURATION", "soon")
	t.Setenv("BAD_INT", "many")
	t.Setenv("BAD_FLOAT", "lots")

	assert.Equal(t, time.Minute, getDurationEnv("BAD_DURATION", time.Minute))
	assert.Equal(t, 5, getIntEnv("BAD_INT", 5))
	assert.Equal(t, 1.5, getFloatEnv("BAD_FLOAT", 1.5))
}
