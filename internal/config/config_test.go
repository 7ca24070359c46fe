package config

import (
	"testing"
	"time"
)

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, POST ,")
	if !m["GET"] || !m["POST"] {
		t.Fatalf("parseMethods: got %v", m)
	}
	if len(m) != 2 {
		t.Fatalf("parseMethods: got %d entries, want 2", len(m))
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")
	if !envBool("TEST_BOOL", false) {
		t.Fatal("yes must parse as true")
	}
	t.Setenv("TEST_BOOL", "off")
	if envBool("TEST_BOOL", true) {
		t.Fatal("off must parse as false")
	}
	t.Setenv("TEST_BOOL", "garbage")
	if !envBool("TEST_BOOL", true) {
		t.Fatal("unparseable value must fall back to the default")
	}
}

func TestEnvDur(t *testing.T) {
	t.Setenv("TEST_DUR", "250ms")
	if got := envDur("TEST_DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("envDur = %v, want 250ms", got)
	}
	t.Setenv("TEST_DUR", "not-a-duration")
	if got := envDur("TEST_DUR", time.Second); got != time.Second {
		t.Fatalf("envDur fallback = %v, want 1s", got)
	}
}

func TestLoadRateLimitConfigClamping(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Fatalf("Capacity = %d, want 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Fatalf("RefillTokens = %d, want 1", cfg.RefillTokens)
	}
	// TTL is raised to cover at least five refill intervals.
	if cfg.TTL != 10*time.Second {
		t.Fatalf("TTL = %v, want 10s", cfg.TTL)
	}
}

func TestLoadRateLimitConfigBurstOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "60")
	t.Setenv("RATE_LIMIT_BURST", "10")
	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 10 {
		t.Fatalf("Capacity = %d, want 10", cfg.Capacity)
	}
}
