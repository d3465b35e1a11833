package fuzzy

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain ascii", input: "split_mp3", want: "split_mp3"},
		{name: "uppercase", input: "Build Project", want: "build project"},
		{name: "diacritics", input: "Café", want: "cafe"},
		{name: "stacked diacritics", input: "Žlutý kůň", want: "zluty kun"},
		{name: "compatibility form", input: "①", want: "1"},
		{name: "unencodable residue dropped", input: "straße", want: "strae"},
		{name: "fully unencodable", input: "日本語", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "punctuation kept", input: "a-b.c", want: "a-b.c"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
