package identity

import "testing"

func TestDigest_Deterministic(t *testing.T) {
	a := Digest("hello")
	b := Digest("hello")
	if a != b {
		t.Errorf("digest not stable: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(a))
	}
}

func TestDigest_KnownValue(t *testing.T) {
	// SHA-256 of the empty string.
	got := Digest("")
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Errorf("Digest(\"\") = %q, want %q", got, want)
	}
}

func TestDigest_NoNormalization(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"case differs", "Hello", "hello"},
		{"whitespace differs", "hello world", "hello  world"},
		{"trailing space", "hello", "hello "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Digest(tt.a) == Digest(tt.b) {
				t.Errorf("Digest(%q) == Digest(%q), want distinct identifiers", tt.a, tt.b)
			}
		})
	}
}
