package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"classy-weather/configs"
)

func TestEmbeddedDefaults(t *testing.T) {
	t.Cleanup(func() { _ = Load(configs.ApplicationYML) })

	tests := []struct {
		key  string
		got  func(string) any
		want any
	}{
		{key: "app.server.port", got: func(k string) any { return GetString(k) }, want: "8080"},
		{key: "app.search.min-query-length", got: func(k string) any { return GetInt(k) }, want: 2},
		{key: "app.search.cancel-superseded", got: func(k string) any { return GetBool(k) }, want: true},
		{key: "app.cache.enabled", got: func(k string) any { return GetBool(k) }, want: false},
		{key: "app.http.read-timeout", got: func(k string) any { return GetDuration(k) }, want: 60 * time.Second},
		{key: "app.open-meteo.geocoding-url", got: func(k string) any { return GetString(k) }, want: "https://geocoding-api.open-meteo.com"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := tt.got(tt.key); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("APP_SEARCH_MIN_QUERY_LENGTH", "4")

	if got := GetInt("app.search.min-query-length"); got != 4 {
		t.Errorf("expected environment to override the file, got %d", got)
	}
}

func TestInitAndSet(t *testing.T) {
	t.Cleanup(func() { _ = Load(configs.ApplicationYML) })

	path := filepath.Join(t.TempDir(), "application.yml")
	yml := "app:\n  cache:\n    warm:\n      locations: [Berlin, Lisbon]\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := GetStringSlice("app.cache.warm.locations"); len(got) != 2 || got[1] != "Lisbon" {
		t.Errorf("unexpected locations %v", got)
	}

	Set("app.server.port", 9090)
	if got := GetString("app.server.port"); got != "9090" {
		t.Errorf("expected Set to override, got %q", got)
	}

	if err := Init(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}
