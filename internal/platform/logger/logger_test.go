package logger

import (
	"strings"
	"testing"
)

func TestSanitizeValueRedactsSensitiveKeys(t *testing.T) {
	if got := sanitizeValue("whatsapp", "+91 98765 43210"); got != "[REDACTED]" {
		t.Fatalf("whatsapp: want=%q got=%v", "[REDACTED]", got)
	}
	if got := sanitizeValue("api_key", "sk-secret"); got != "[REDACTED]" {
		t.Fatalf("api_key: want=%q got=%v", "[REDACTED]", got)
	}
}

func TestSanitizeValueHashesEmail(t *testing.T) {
	got, ok := sanitizeValue("email", "user@example.com").(string)
	if !ok {
		t.Fatalf("email: expected string result")
	}
	if !strings.HasPrefix(got, "sha256:") {
		t.Fatalf("email: want sha256 prefix, got=%q", got)
	}
	if strings.Contains(got, "user@example.com") {
		t.Fatalf("email: raw value leaked: %q", got)
	}

	// Same input hashes to the same token so log lines stay correlatable.
	again, _ := sanitizeValue("email", "user@example.com").(string)
	if again != got {
		t.Fatalf("email hash unstable: %q vs %q", got, again)
	}
}

func TestSanitizeValuePassesOrdinaryKeys(t *testing.T) {
	if got := sanitizeValue("user_id", "abc-123"); got != "abc-123" {
		t.Fatalf("user_id: want passthrough, got=%v", got)
	}
}
