package auth

import (
	"testing"
	"time"

	"github.com/arogyahub/docbook/internal/models"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	acc := &models.Account{
		ID:       42,
		Username: "dr_x",
		Role:     models.RoleDoctor,
	}

	token, err := GenerateToken(acc, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.AccountID != 42 {
		t.Errorf("AccountID = %d, want 42", claims.AccountID)
	}
	if claims.Username != "dr_x" {
		t.Errorf("Username = %q", claims.Username)
	}
	if claims.Role != models.RoleDoctor {
		t.Errorf("Role = %q", claims.Role)
	}
	if claims.TokenID == "" {
		t.Error("TokenID is empty; logout revocation needs it")
	}
	if remaining := time.Until(claims.ExpiresAt); remaining <= 0 || remaining > TokenTTL {
		t.Errorf("ExpiresAt out of range: %v remaining", remaining)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	acc := &models.Account{ID: 1, Username: "pt_y", Role: models.RolePatient}

	token, err := GenerateToken(acc, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(token, "other-secret"); err != ErrInvalidToken {
		t.Errorf("wrong secret accepted: %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", testSecret); err != ErrInvalidToken {
		t.Errorf("garbage token accepted: %v", err)
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	acc := &models.Account{ID: 7, Username: "pt_y", Role: models.RolePatient}

	a, _ := GenerateToken(acc, testSecret)
	b, _ := GenerateToken(acc, testSecret)

	ca, _ := ParseToken(a, testSecret)
	cb, _ := ParseToken(b, testSecret)
	if ca.TokenID == cb.TokenID {
		t.Error("two tokens share a jti")
	}
}
