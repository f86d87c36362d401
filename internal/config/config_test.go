package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_BUCKET", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.SupabaseBucket != "sleep-uploads" {
		t.Fatalf("bucket default not applied: %q", cfg.SupabaseBucket)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("OPENAI_API_KEY", "key")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.SupabaseURL != "https://project.supabase.co" || cfg.OpenAIAPIKey != "key" {
		t.Fatalf("supabase/openai overrides missing: %+v", cfg)
	}
}

func TestStorageKey(t *testing.T) {
	cfg := &Config{SupabaseAnonKey: "anon"}
	if got := cfg.StorageKey(); got != "anon" {
		t.Fatalf("StorageKey() = %q, want anon", got)
	}

	cfg.SupabaseServiceRoleKey = "service"
	if got := cfg.StorageKey(); got != "service" {
		t.Fatalf("StorageKey() = %q, want service", got)
	}
}
