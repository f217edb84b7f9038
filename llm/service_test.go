package llm

import (
	"strings"
	"testing"
	"time"
)

func TestParseService_CaseInsensitive(t *testing.T) {
	for _, s := range Services() {
		lower, err := ParseService(strings.ToLower(string(s)))
		if err != nil {
			t.Fatalf("ParseService(%q) failed: %v", strings.ToLower(string(s)), err)
		}
		if lower != s {
			t.Errorf("Expected %q, got %q", s, lower)
		}

		upper, err := ParseService(strings.ToUpper(string(s)))
		if err != nil {
			t.Fatalf("ParseService(%q) failed: %v", strings.ToUpper(string(s)), err)
		}
		if upper != s {
			t.Errorf("Expected %q, got %q", s, upper)
		}
	}
}

func TestParseService_Canonical(t *testing.T) {
	s, err := ParseService("AristoteOnMyDocker")
	if err != nil {
		t.Fatalf("ParseService failed: %v", err)
	}
	if s != ServiceAristote {
		t.Errorf("Expected ServiceAristote, got %q", s)
	}
}

func TestParseService_Invalid(t *testing.T) {
	_, err := ParseService("not-a-service")
	if err == nil {
		t.Fatal("Expected error for unknown service")
	}
	if !IsInvalidServiceError(err) {
		t.Errorf("Expected invalid service error, got %v", err)
	}
}

func TestParseService_NoPartialMatch(t *testing.T) {
	if _, err := ParseService("open"); err == nil {
		t.Error("Expected error for partial service name")
	}
	if _, err := ParseService("openai "); err == nil {
		t.Error("Expected error for padded service name")
	}
}

func TestCooldown_TotalOverServices(t *testing.T) {
	for _, s := range Services() {
		if _, ok := cooldowns[s]; !ok {
			t.Errorf("No cooldown entry for service %q", s)
		}
		if s.Cooldown() < 0 {
			t.Errorf("Negative cooldown for service %q", s)
		}
	}
}

func TestCooldown_Values(t *testing.T) {
	if got := ServiceAristote.Cooldown(); got != 5000*time.Millisecond {
		t.Errorf("Expected 5000ms cooldown for Aristote, got %v", got)
	}
	if got := ServiceXAI.Cooldown(); got != 0 {
		t.Errorf("Expected 0 cooldown for xAI, got %v", got)
	}
}

func TestRequiresToken(t *testing.T) {
	if ServiceAristote.RequiresToken() {
		t.Error("AristoteOnMyDocker should not require a token")
	}
	for _, s := range Services() {
		if s == ServiceAristote {
			continue
		}
		if !s.RequiresToken() {
			t.Errorf("Service %q should require a token", s)
		}
	}
}
