package cache

import (
	"context"
	"testing"

	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "Berlin", want: "berlin"},
		{query: "  São Paulo ", want: "são paulo"},
		{query: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := CacheKey(tt.query); got != tt.want {
				t.Errorf("CacheKey(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestNoopLocationCache(t *testing.T) {
	c := NewNoopLocationCache()
	ctx := context.Background()

	if err := c.Set(ctx, "Berlin", entity.ResolvedLocation{Name: "Berlin"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	location, ok, err := c.Get(ctx, "Berlin")
	if err != nil || ok || location != nil {
		t.Errorf("expected a miss, got %v %v %v", location, ok, err)
	}

	if status := c.Health(ctx).Status; status != model.StatusUnknown {
		t.Errorf("expected status UNKNOWN, got %s", status)
	}
}
