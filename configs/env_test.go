package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CONTEXT_PATH=/weather-widget\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("CONTEXT_PATH")
		Env = readEnv()
	})

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Env.ContextPath != "/weather-widget" {
		t.Errorf("ContextPath = %q, want /weather-widget", Env.ContextPath)
	}
	if Env.ApplicationName != "classy-weather" {
		t.Errorf("ApplicationName = %q, want default", Env.ApplicationName)
	}
}

func TestLoadEnvFile_MissingFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("expected missing file to be ignored, got %v", err)
	}
}
