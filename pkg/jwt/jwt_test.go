package jwt

import (
	"testing"
	"time"

	"samaysetu/backend/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  10 * time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, err := m.Generate("asha@mitaoe.ac.in", 7, "ADMIN")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.Subject != "asha@mitaoe.ac.in" {
		t.Errorf("expected subject asha@mitaoe.ac.in, got %s", claims.Subject)
	}
	if claims.TeacherID != 7 {
		t.Errorf("expected teacher id 7, got %d", claims.TeacherID)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %s", claims.Role)
	}
	if claims.ID == "" {
		t.Error("jti should not be empty")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 9*time.Hour+59*time.Minute || ttl > 10*time.Hour {
		t.Errorf("expected ttl about 10h, got %v", ttl)
	}
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m := NewManager(&config.AuthConfig{JWTSecret: "test-secret-key-for-unit-testing-2026"})
	if m.TTL() != 10*time.Hour {
		t.Errorf("expected default ttl 10h, got %v", m.TTL())
	}
}

func TestValidateToken_Subject(t *testing.T) {
	m := newTestManager()
	token, _ := m.Generate("asha@mitaoe.ac.in", 7, "TEACHER")

	if !m.ValidateToken(token, "asha@mitaoe.ac.in") {
		t.Error("expected token to validate for its own subject")
	}
	if m.ValidateToken(token, "ravi@mitaoe.ac.in") {
		t.Error("expected token to fail for a different subject")
	}
}

func TestExtractSubject(t *testing.T) {
	m := newTestManager()
	token, _ := m.Generate("asha@mitaoe.ac.in", 7, "TEACHER")

	sub, err := m.ExtractSubject(token)
	if err != nil {
		t.Fatalf("ExtractSubject failed: %v", err)
	}
	if sub != "asha@mitaoe.ac.in" {
		t.Errorf("expected asha@mitaoe.ac.in, got %s", sub)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager()
	m.now = func() time.Time { return time.Now().Add(-11 * time.Hour) }
	token, err := m.Generate("asha@mitaoe.ac.in", 7, "TEACHER")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	m.now = time.Now
	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
	if m.ValidateToken(token, "asha@mitaoe.ac.in") {
		t.Error("expired token must not validate")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	token, _ := m.Generate("asha@mitaoe.ac.in", 7, "TEACHER")

	other := NewManager(&config.AuthConfig{JWTSecret: "another-secret-key-for-testing", TokenTTL: time.Hour})
	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()
	if _, err := m.ParseToken("not.a.token"); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
