package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func loadFromEnvFile(t *testing.T, contents string) *Config {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	return cfg
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := loadFromEnvFile(t, "APP_PORT=8080\nDB_HOST=localhost\n")

	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("expected default access expiry 15m, got %v", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("expected default refresh expiry 168h, got %v", cfg.JWT.RefreshExpiry)
	}
	if cfg.Booking.SlotLockTTL != 5*time.Second {
		t.Errorf("expected default slot lock TTL 5s, got %v", cfg.Booking.SlotLockTTL)
	}
	if cfg.Booking.WizardSessionTTL != 30*time.Minute {
		t.Errorf("expected default wizard TTL 30m, got %v", cfg.Booking.WizardSessionTTL)
	}
	if cfg.Booking.DefaultConsultationMinutes != 30 {
		t.Errorf("expected default consultation length 30, got %d", cfg.Booking.DefaultConsultationMinutes)
	}
	if len(cfg.App.AllowedOrigins) != 1 || cfg.App.AllowedOrigins[0] != "*" {
		t.Errorf("expected default CORS allowlist [*], got %v", cfg.App.AllowedOrigins)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg := loadFromEnvFile(t, `APP_PORT=9000
JWT_ACCESS_EXPIRY=5m
BOOKING_SLOT_LOCK_TTL=10s
BOOKING_WIZARD_TTL=1h
BOOKING_DEFAULT_CONSULTATION_MINUTES=20
CORS_ALLOWED_ORIGINS=https://app.example.com, https://admin.example.com
`)

	if cfg.App.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.App.Port)
	}
	if cfg.JWT.AccessExpiry != 5*time.Minute {
		t.Errorf("expected access expiry 5m, got %v", cfg.JWT.AccessExpiry)
	}
	if cfg.Booking.SlotLockTTL != 10*time.Second {
		t.Errorf("expected slot lock TTL 10s, got %v", cfg.Booking.SlotLockTTL)
	}
	if cfg.Booking.WizardSessionTTL != time.Hour {
		t.Errorf("expected wizard TTL 1h, got %v", cfg.Booking.WizardSessionTTL)
	}
	if cfg.Booking.DefaultConsultationMinutes != 20 {
		t.Errorf("expected consultation length 20, got %d", cfg.Booking.DefaultConsultationMinutes)
	}
	want := []string{"https://app.example.com", "https://admin.example.com"}
	if len(cfg.App.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d CORS origins, got %v", len(want), cfg.App.AllowedOrigins)
	}
	for i := range want {
		if cfg.App.AllowedOrigins[i] != want[i] {
			t.Errorf("origin[%d] = %q, want %q", i, cfg.App.AllowedOrigins[i], want[i])
		}
	}
}
