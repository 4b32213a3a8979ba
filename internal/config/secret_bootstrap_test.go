package config

import (
	"testing"
)

func TestEnsureSecrets_GeneratesMissingSecret(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	if err := cfg.ensureSecrets(); err != nil {
		t.Fatalf("ensureSecrets() error = %v", err)
	}

	if cfg.Security.SessionSecret == "" {
		t.Fatal("session secret should be auto-generated")
	}
	// 32 random bytes hex-encoded -> 64 chars.
	if len(cfg.Security.SessionSecret) != 64 {
		t.Fatalf("session secret length = %d, want 64", len(cfg.Security.SessionSecret))
	}
}

func TestEnsureSecrets_PreservesProvidedSecret(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Security: SecurityConfig{
			SessionSecret: "abcdefghijklmnopqrstuvwxyzABCDEF123456", // 38 chars
		},
	}

	if err := cfg.ensureSecrets(); err != nil {
		t.Fatalf("ensureSecrets() error = %v", err)
	}

	if got := cfg.Security.SessionSecret; got != "abcdefghijklmnopqrstuvwxyzABCDEF123456" {
		t.Fatalf("session secret changed unexpectedly: %q", got)
	}
}
