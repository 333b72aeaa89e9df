package msg

import (
	"errors"
	"testing"
	"time"
)

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{name: "no args", key: "app.start", want: "Starting classy-weather"},
		{name: "string and int", key: "lookup.too-short", args: []interface{}{"B", 2}, want: "Query 'B' is shorter than 2 characters, skipping lookup"},
		{name: "error arg", key: "lookup.failed", args: []interface{}{"Berlin", errors.New("timeout")}, want: "Lookup for 'Berlin' failed: timeout"},
		{name: "float arg", key: "lookup.forecast", args: []interface{}{"Berlin", 52.52, 13.41}, want: "Fetching forecast for Berlin (52.52, 13.41)"},
		{name: "duration arg", key: "app.req-end", args: []interface{}{"GET", "/weather", 200, 15 * time.Millisecond, "abc"}, want: "Request GET /weather finished with status 200 in 15ms (request id abc)"},
		{name: "unknown key", key: "nope", want: "Message not found: nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoad_MergesIntoCatalogue(t *testing.T) {
	if err := Load([]byte("custom:\n  greeting: \"Hello {0}\"\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := GetMessage("custom.greeting", "Lisbon"); got != "Hello Lisbon" {
		t.Errorf("unexpected message %q", got)
	}
	if got := GetMessage("app.start"); got != "Starting classy-weather" {
		t.Errorf("expected existing messages to survive a merge, got %q", got)
	}
}
