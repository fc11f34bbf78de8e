package main

import "testing"

func TestCorsConfigAllowsCredentialsForExplicitOrigins(t *testing.T) {
	cfg := corsConfig("http://localhost:5173,https://example.com")
	if !cfg.AllowCredentials {
		t.Fatal("Expected credentials allowed for explicit origins")
	}
	if cfg.AllowOrigins != "http://localhost:5173,https://example.com" {
		t.Fatalf("Expected origins passed through, got %q", cfg.AllowOrigins)
	}
}

func TestCorsConfigWildcardDropsCredentials(t *testing.T) {
	// fiber's cors middleware panics on wildcard + credentials; the
	// wildcard case must trade credentials away.
	cfg := corsConfig("*")
	if cfg.AllowCredentials {
		t.Fatal("Expected credentials disabled for wildcard origin")
	}
	if cfg.AllowOrigins != "*" {
		t.Fatalf("Expected wildcard origin, got %q", cfg.AllowOrigins)
	}
}
