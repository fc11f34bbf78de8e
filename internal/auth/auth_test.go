package auth_test

import (
	"testing"
	"time"

	"weekpulse/internal/auth"
)

func TestTokenRoundtrip(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	token, err := tokens.Generate()
	if err != nil {
		t.Fatal(err)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != auth.AdminSubject {
		t.Fatalf("Expected subject %q, got %q", auth.AdminSubject, claims.Subject)
	}
	if claims.ID == "" {
		t.Fatal("Expected a token id")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("secret-a", time.Hour).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.NewTokenManager("secret-b", time.Hour).Validate(token); err == nil {
		t.Fatal("Expected validation to fail with the wrong secret")
	}
}

func TestTokenTampered(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tokens.Validate(token + "x"); err == nil {
		t.Fatal("Expected validation to fail for a tampered token")
	}
}

func TestTokenExpired(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", -time.Minute)
	token, err := tokens.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tokens.Validate(token); err == nil {
		t.Fatal("Expected validation to fail for an expired token")
	}
}

func TestVerifyPasswordPlaintext(t *testing.T) {
	if !auth.VerifyPassword("hunter2", "hunter2") {
		t.Fatal("Expected matching plaintext to verify")
	}
	if auth.VerifyPassword("hunter2", "hunter3") {
		t.Fatal("Expected mismatched plaintext to fail")
	}
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if !auth.VerifyPassword(hash, "hunter2") {
		t.Fatal("Expected bcrypt hash to verify the original password")
	}
	if auth.VerifyPassword(hash, "hunter3") {
		t.Fatal("Expected bcrypt hash to reject a wrong password")
	}
}

func TestLimiterBlocksAfterMax(t *testing.T) {
	limiter := auth.NewLimiter(auth.NewMemoryAttemptStore(time.Minute), 3, time.Minute)

	for i := 0; i < 3; i++ {
		if allowed, _ := limiter.Allow("1.2.3.4"); !allowed {
			t.Fatalf("Attempt %d should be allowed", i+1)
		}
	}
	allowed, msg := limiter.Allow("1.2.3.4")
	if allowed {
		t.Fatal("Fourth attempt should be blocked")
	}
	if msg == "" {
		t.Fatal("Expected a retry hint message")
	}

	// Other IPs are unaffected.
	if allowed, _ := limiter.Allow("5.6.7.8"); !allowed {
		t.Fatal("Different IP should be allowed")
	}
}

func TestLimiterReset(t *testing.T) {
	limiter := auth.NewLimiter(auth.NewMemoryAttemptStore(time.Minute), 1, time.Minute)

	limiter.Allow("1.2.3.4")
	if allowed, _ := limiter.Allow("1.2.3.4"); allowed {
		t.Fatal("Second attempt should be blocked")
	}

	limiter.Reset("1.2.3.4")
	if allowed, _ := limiter.Allow("1.2.3.4"); !allowed {
		t.Fatal("Attempt after reset should be allowed")
	}
}

func TestAttemptStoreWindowExpiry(t *testing.T) {
	store := auth.NewMemoryAttemptStore(time.Minute)

	now := time.Now()
	store.Record("1.2.3.4", now)
	store.Record("1.2.3.4", now)

	// A record past the window starts a fresh count.
	count, _ := store.Record("1.2.3.4", now.Add(2*time.Minute))
	if count != 1 {
		t.Fatalf("Expected fresh window count 1, got %d", count)
	}
}
