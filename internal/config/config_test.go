package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "LOG_LEVEL", "INVENTORY_SEED", "TICK_CRON_SCHEDULE", "TIMEZONE",
		"MONGODB_URI", "MONGODB_DB_NAME", "REDIS_ADDR",
		"WHATSAPP_TOKEN", "WHATSAPP_PHONE_NUMBER_ID", "WHATSAPP_BASE_URL",
		"WHATSAPP_API_VERSION", "WHATSAPP_REPORT_RECIPIENT",
		"GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_DATABASE_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Reporting.CronSchedule != "0 0 * * *" {
		t.Errorf("expected midnight schedule, got %s", cfg.Reporting.CronSchedule)
	}
	if !cfg.Inventory.SeedOnStart {
		t.Error("expected seeding to be enabled by default")
	}
	if cfg.MongoDB.URI != "" {
		t.Errorf("expected empty mongodb uri, got %s", cfg.MongoDB.URI)
	}
	if cfg.WhatsApp.Enabled() {
		t.Error("expected whatsapp to be disabled")
	}
	if cfg.Sheets.Enabled() {
		t.Error("expected sheets to be disabled")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to "".
	for _, key := range []string{"APP_PORT", "INVENTORY_SEED", "TIMEZONE"} {
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nINVENTORY_SEED=false\nTIMEZONE=Europe/Paris\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("INVENTORY_SEED")
		os.Unsetenv("TIMEZONE")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Inventory.SeedOnStart {
		t.Error("expected seeding to be disabled")
	}
	if cfg.Reporting.Timezone != "Europe/Paris" {
		t.Errorf("expected Europe/Paris, got %s", cfg.Reporting.Timezone)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad cron", map[string]string{"TICK_CRON_SCHEDULE": "every day"}, "TICK_CRON_SCHEDULE"},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}, "TIMEZONE"},
		{"bad log level", map[string]string{"LOG_LEVEL": "chatty"}, "LOG_LEVEL"},
		{"bad seed flag", map[string]string{"INVENTORY_SEED": "maybe"}, "INVENTORY_SEED"},
		{"half whatsapp", map[string]string{"WHATSAPP_TOKEN": "token"}, "WHATSAPP_PHONE_NUMBER_ID"},
		{"whatsapp without recipient", map[string]string{"WHATSAPP_TOKEN": "token", "WHATSAPP_PHONE_NUMBER_ID": "123"}, "WHATSAPP_REPORT_RECIPIENT"},
		{"half sheets", map[string]string{"GOOGLE_SHEET_DATABASE_ID": "sheet"}, "GOOGLE_SHEETS_CREDENTIALS_PATH"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error mentioning %s, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestWhatsAppConfig_Enabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHATSAPP_TOKEN", "token")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "123")
	t.Setenv("WHATSAPP_REPORT_RECIPIENT", "224600000000")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.WhatsApp.Enabled() {
		t.Error("expected whatsapp to be enabled")
	}
}

func TestValidate_Nil(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for nil config")
	}
}
