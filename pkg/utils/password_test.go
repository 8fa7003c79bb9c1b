package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_VerifiesAndSalts(t *testing.T) {
	t.Parallel()
	const pw = "secret-pass-123"

	h1, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (per-call salt)")
	}
	if !CheckPassword(pw, h1) {
		t.Fatalf("CheckPassword(pw, HashPassword(pw)) = false")
	}
	if !CheckPassword(pw, h2) {
		t.Fatalf("second hash must verify too")
	}
}

func TestHashPassword_InputLengthCap(t *testing.T) {
	t.Parallel()

	// bcrypt refuses inputs over 72 bytes; the error must surface instead of
	// an empty digest that can never verify.
	if h, err := HashPassword(strings.Repeat("x", 100)); err == nil {
		t.Fatalf("100-byte password hashed without error, digest %q", h)
	}

	edge := strings.Repeat("x", 72)
	h, err := HashPassword(edge)
	if err != nil {
		t.Fatalf("72-byte password must hash: %v", err)
	}
	if !CheckPassword(edge, h) {
		t.Fatalf("72-byte password must verify")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()
	h, err := HashPassword("right-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if CheckPassword("wrong-password", h) {
		t.Fatalf("wrong password verified")
	}
}

func TestCheckPassword_MalformedDigestFailsClosed(t *testing.T) {
	t.Parallel()
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$xx"} {
		if CheckPassword("whatever", digest) {
			t.Fatalf("malformed digest %q verified", digest)
		}
	}
}
