package config

import (
	"testing"
	"time"
)

func TestValidate_ProductionRequiresRealSecret(t *testing.T) {
	cfg := &Config{Env: "production", TokenTTL: time.Hour}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing production secret")
	}

	cfg.JWTSecret = devJWTSecret
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for dev fallback secret in production")
	}

	cfg.JWTSecret = "a-real-secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DevelopmentAllowsFallback(t *testing.T) {
	cfg := &Config{Env: "development", JWTSecret: devJWTSecret, TokenTTL: time.Hour}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TokenTTL(t *testing.T) {
	cfg := &Config{Env: "development", JWTSecret: devJWTSecret}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for non-positive TTL")
	}
}
