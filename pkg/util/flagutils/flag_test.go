package flagutils

import "testing"

func TestCountryFlag(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "DE", want: "\U0001F1E9\U0001F1EA"},
		{code: "us", want: "\U0001F1FA\U0001F1F8"},
		{code: "Br", want: "\U0001F1E7\U0001F1F7"},
		{code: "", want: ""},
		{code: "1-", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := CountryFlag(tt.code); got != tt.want {
				t.Errorf("CountryFlag(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	if got, want := DisplayLabel("Berlin", "DE"), "Berlin \U0001F1E9\U0001F1EA"; got != want {
		t.Errorf("DisplayLabel(Berlin, DE) = %q, want %q", got, want)
	}
	if got := DisplayLabel("Nowhere", ""); got != "Nowhere" {
		t.Errorf("DisplayLabel(Nowhere, \"\") = %q, want %q", got, "Nowhere")
	}
}
