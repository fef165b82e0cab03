package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	env := LoadEnv()

	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr = %q, want :8080", env.AppAddr)
	}
	if len(env.BusCodes) != 5 || env.BusCodes[0] != "BUS001" {
		t.Fatalf("BusCodes = %v", env.BusCodes)
	}
	if env.SeatsPerBus != 40 || env.BaseFare != 50.0 {
		t.Fatalf("fleet defaults wrong: seats=%d fare=%v", env.SeatsPerBus, env.BaseFare)
	}
	if len(env.PremiumBuses) != 2 {
		t.Fatalf("PremiumBuses = %v", env.PremiumBuses)
	}
	if !env.RateLimitEnabled || env.RateLimitCapacity != 100 || env.RateLimitRefill != 36*time.Second {
		t.Fatalf("rate limit defaults wrong: %+v", env)
	}
	if env.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v, want 24h", env.TokenTTL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("BUS_CODES", "bus010, bus011 ,")
	t.Setenv("SEATS_PER_BUS", "20")
	t.Setenv("BASE_FARE", "75.5")
	t.Setenv("RATELIMIT_ENABLED", "false")
	t.Setenv("TOKEN_TTL", "30m")

	env := LoadEnv()

	if env.AppAddr != ":9999" {
		t.Fatalf("AppAddr = %q", env.AppAddr)
	}
	if len(env.BusCodes) != 2 || env.BusCodes[0] != "BUS010" || env.BusCodes[1] != "BUS011" {
		t.Fatalf("BusCodes = %v, want normalized [BUS010 BUS011]", env.BusCodes)
	}
	if env.SeatsPerBus != 20 || env.BaseFare != 75.5 {
		t.Fatalf("overrides not applied: seats=%d fare=%v", env.SeatsPerBus, env.BaseFare)
	}
	if env.RateLimitEnabled {
		t.Fatalf("rate limiting should be disabled")
	}
	if env.TokenTTL != 30*time.Minute {
		t.Fatalf("TokenTTL = %v, want 30m", env.TokenTTL)
	}
}

func TestLoadEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SEATS_PER_BUS", "forty")
	t.Setenv("BASE_FARE", "cheap")
	t.Setenv("TOKEN_TTL", "soon")

	env := LoadEnv()
	if env.SeatsPerBus != 40 || env.BaseFare != 50.0 || env.TokenTTL != 24*time.Hour {
		t.Fatalf("malformed values should fall back to defaults: %+v", env)
	}
}
