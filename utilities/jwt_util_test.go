package utilities

import (
	"testing"
	"time"

	"critico-backend/internal/model"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	user := &model.User{ID: 7, Email: "docente@critico.dev", Role: model.RoleTeacher}

	token, err := ts.Issue(user)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify freshly issued token: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected subject id 7, got %d", claims.UserID)
	}
	if claims.Role != model.RoleTeacher {
		t.Errorf("expected role teacher, got %q", claims.Role)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)
	token, err := ts.Issue(&model.User{ID: 1, Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := ts.Verify(token); err != ErrInvalidCredential {
		t.Errorf("expected ErrInvalidCredential for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(&model.User{ID: 1, Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := verifier.Verify(token); err != ErrInvalidCredential {
		t.Errorf("expected ErrInvalidCredential for forged signature, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ts.Verify(input); err != ErrInvalidCredential {
			t.Errorf("Verify(%q): expected ErrInvalidCredential, got %v", input, err)
		}
	}
}
