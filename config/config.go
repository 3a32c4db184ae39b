package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	// Local snapshot storage
	StorageDir string
	StorageKey string
	// Mock checkout
	CheckoutLatency time.Duration
	// Session tokens
	SessionSecret      string
	SessionTokenExpiry time.Duration
	// Sync sink write throttle
	SyncWritesPerSec float64
	SyncBurst        int
	SyncFlushPeriod  time.Duration
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: Try loading .env (standard local dev).
		// No error here: env vars alone are a valid setup.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StorageDir: getEnv("STORAGE_DIR", defaultStorageDir()),
		StorageKey: getEnv("STORAGE_KEY", "modern-store"),

		// Simulated payment round-trip
		CheckoutLatency: getDurationEnv("CHECKOUT_LATENCY", time.Second),

		SessionSecret:      getEnv("SESSION_SECRET", "default_secret_CHANGE_ME"),
		SessionTokenExpiry: getDurationEnv("SESSION_TOKEN_EXPIRY", time.Hour*24),

		// Sync throttle defaults: 2 writes/s, burst 5, flush every 2s
		SyncWritesPerSec: getFloatEnv("SYNC_WRITES_PER_SEC", 2),
		SyncBurst:        getIntEnv("SYNC_BURST", 5),
		SyncFlushPeriod:  getDurationEnv("SYNC_FLUSH_PERIOD", 2*time.Second),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.SessionSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default session secret.")
	}
	if c.CheckoutLatency < 0 {
		log.Fatal("CRITICAL: CHECKOUT_LATENCY must be non-negative")
	}
}

func defaultStorageDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".modernstore"
	}
	return dir + string(os.PathSeparator) + "modernstore"
}
