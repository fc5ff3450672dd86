package auth

import (
	"testing"
	"time"

	"gamepal/config"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
		Issuer:        "gamepal-test",
	}
}

func TestAccessTokenRoundtrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 42, "player@example.com", "COMPANION")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Email != "player@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != "COMPANION" {
		t.Errorf("role = %q", claims.Role)
	}
	if claims.Issuer != "gamepal-test" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 1, "a@b.c", "USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	other := testJWTConfig()
	other.AccessSecret = "different-secret"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Error("expected error for token signed with another secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessExpiry = -time.Minute
	token, err := GenerateAccessToken(cfg, 1, "a@b.c", "USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseAccessToken(testJWTConfig(), "not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateRefreshToken(cfg, 42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	userID, err := ParseRefreshToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
}

func TestRefreshTokenNotValidAsAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	refresh, err := GenerateRefreshToken(cfg, 5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseAccessToken(cfg, refresh); err == nil {
		t.Error("refresh token parsed as access token; the secrets must differ")
	}
	access, err := GenerateAccessToken(cfg, 5, "a@b.c", "USER")
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}
	if _, err := ParseRefreshToken(cfg, access); err == nil {
		t.Error("access token parsed as refresh token; the secrets must differ")
	}
}

func TestParseRefreshRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.RefreshExpiry = -time.Minute
	token, err := GenerateRefreshToken(cfg, 9)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseRefreshToken(cfg, token); err == nil {
		t.Error("expected error for expired refresh token")
	}
}
