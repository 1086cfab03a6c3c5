package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Setenv("SB_EMAIL", "")
	t.Setenv("SB_LOG_FILE", "")
	t.Setenv("SB_LOG_LEVEL", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DateLayout != "2006-01-02" {
		t.Errorf("expected DateLayout=2006-01-02, got %s", cfg.DateLayout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
	if !cfg.Clipboard {
		t.Error("expected Clipboard enabled by default")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DateLayout != DefaultConfig().DateLayout {
		t.Errorf("expected default layout, got %s", cfg.DateLayout)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DefaultEmail = "analyst@example.com"
	cfg.Logging.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultEmail != "analyst@example.com" {
		t.Errorf("expected DefaultEmail round trip, got %s", loaded.DefaultEmail)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", loaded.Logging.Level)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SB_EMAIL", "env@example.com")
	t.Setenv("SB_LOG_FILE", "/tmp/sb-test.log")
	t.Setenv("SB_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultEmail != "env@example.com" {
		t.Errorf("expected env email, got %s", cfg.DefaultEmail)
	}
	if cfg.Logging.File != "/tmp/sb-test.log" {
		t.Errorf("expected env log file, got %s", cfg.Logging.File)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env level, got %s", cfg.Logging.Level)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := map[string]string{
		"bad level":    "logging:\n  level: loud\n",
		"empty layout": "date_layout: \"\"\n",
		"bad yaml":     "logging: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %s", name)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	// godotenv never overrides a variable that is already set, even to ""
	t.Setenv("SB_EMAIL", "")
	os.Unsetenv("SB_EMAIL")
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	// No file is not an error
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv without file: %v", err)
	}

	if err := os.WriteFile(".env", []byte("SB_EMAIL=dotenv@example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SB_EMAIL"); got != "dotenv@example.com" {
		t.Errorf("expected SB_EMAIL from .env, got %q", got)
	}
}
