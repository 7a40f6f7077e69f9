package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("SUPER_ADMINS", " @root, alice ,,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NotifyHour != 15 || cfg.SweepInterval != time.Minute || cfg.DBPath != "./bot.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.IsSuperAdmin("root") || !cfg.IsSuperAdmin("alice") || cfg.IsSuperAdmin("") {
		t.Fatalf("super admins = %v", cfg.SuperAdmins)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("missing BOT_TOKEN accepted")
	}

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("NOTIFY_HOUR", "24")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("NOTIFY_HOUR=24 accepted")
	}
}

func TestLoadEnvFileKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nEVENTBOT_TEST_A=\"from file\"\nEVENTBOT_TEST_B=file\nbroken line\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EVENTBOT_TEST_A", "")
	os.Unsetenv("EVENTBOT_TEST_A")
	t.Setenv("EVENTBOT_TEST_B", "env")

	if err := loadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("EVENTBOT_TEST_A"); got != "from file" {
		t.Errorf("A = %q", got)
	}
	if got := os.Getenv("EVENTBOT_TEST_B"); got != "env" {
		t.Errorf("B = %q, environment should win", got)
	}
}
