package middleware

import (
	"testing"
	"time"

	"github.com/EduardoCSampaio/financas-app/config"
	"github.com/EduardoCSampaio/financas-app/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

func newTestJwtService() *JwtService {
	return NewJwtService(config.JWTConfig{
		Secret:          "segredo-de-teste",
		ExpirationMin:   30,
		ResetExpiration: 15 * time.Minute,
	}, nil)
}

func TestJwtServiceAccessToken(t *testing.T) {
	svc := newTestJwtService()

	token, err := svc.GenerateToken(&user.User{Email: "maria@email.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "maria@email.com" {
		t.Fatalf("expected subject maria@email.com, got %s", email)
	}
}

func TestJwtServiceExpiration(t *testing.T) {
	svc := newTestJwtService()

	if got := svc.Expiration(); got != 30*time.Minute {
		t.Fatalf("expected 30m expiration, got %s", got)
	}
}

func TestJwtServiceRejectsWrongSecret(t *testing.T) {
	svc := newTestJwtService()

	other := NewJwtService(config.JWTConfig{
		Secret:        "outro-segredo",
		ExpirationMin: 30,
	}, nil)

	token, err := other.GenerateToken(&user.User{Email: "maria@email.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatalf("expected token signed with another secret to fail")
	}
}

func TestJwtServiceRejectsExpiredToken(t *testing.T) {
	svc := newTestJwtService()

	claims := jwt.MapClaims{
		"sub": "maria@email.com",
		"iat": time.Now().Add(-time.Hour).Unix(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo-de-teste"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(signed); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestJwtServiceResetTokenScope(t *testing.T) {
	svc := newTestJwtService()

	resetToken, err := svc.GenerateResetToken("maria@email.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("reset token does not authenticate requests", func(t *testing.T) {
		if _, err := svc.ValidateToken(resetToken); err == nil {
			t.Fatalf("expected reset token to be rejected as access token")
		}
	})

	t.Run("access token does not reset passwords", func(t *testing.T) {
		accessToken, err := svc.GenerateToken(&user.User{Email: "maria@email.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ValidateResetToken(accessToken); err == nil {
			t.Fatalf("expected access token to be rejected for reset")
		}
	})

	t.Run("reset token resolves the email", func(t *testing.T) {
		email, err := svc.ValidateResetToken(resetToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if email != "maria@email.com" {
			t.Fatalf("expected maria@email.com, got %s", email)
		}
	})
}
