package service

import "testing"

func TestHashPasswordDeterministic(t *testing.T) {
	a := HashPassword("secret")
	b := HashPassword("secret")
	if a != b {
		t.Fatalf("same input produced different digests: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestHashPasswordKnownVector(t *testing.T) {
	// sha256("password") in hex
	want := "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if got := HashPassword("password"); got != want {
		t.Fatalf("HashPassword(\"password\") = %s; want %s", got, want)
	}
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("pw1")

	cases := []struct {
		plaintext string
		want      bool
	}{
		{"pw1", true},
		{"pw2", false},
		{"", false},
		{"PW1", false},
	}

	for _, tc := range cases {
		if got := VerifyPassword(tc.plaintext, digest); got != tc.want {
			t.Fatalf("VerifyPassword(%q) = %v; want %v", tc.plaintext, got, tc.want)
		}
	}
}
