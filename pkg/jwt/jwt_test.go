package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/tanzhongyan/Singheatlh/config"

	"github.com/golang-jwt/jwt/v5"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, Issuer: "supabase", Expiry: 365 * 24 * time.Hour})
}

func TestGenerateAndValidateRoleToken(t *testing.T) {
	svc := newTestService("super-secret-jwt-token-with-at-least-32-characters")

	for _, role := range []Role{ServiceRole, AnonRole} {
		token, issued, err := svc.GenerateRoleToken(role)
		if err != nil {
			t.Fatalf("GenerateRoleToken(%s) failed: %v", role, err)
		}
		if got := issued.ExpiresAt.Sub(issued.IssuedAt.Time); got != 365*24*time.Hour {
			t.Errorf("token lifetime %v, want 365 days", got)
		}

		claims, err := svc.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken(%s) failed: %v", role, err)
		}
		if claims.Role != role || claims.Issuer != "supabase" {
			t.Errorf("unexpected claims %+v", claims)
		}
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestService("secret-one").GenerateRoleToken(AnonRole)
	if err != nil {
		t.Fatalf("GenerateRoleToken failed: %v", err)
	}

	if _, err := newTestService("secret-two").ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{Role: ServiceRole}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := newTestService("secret").ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService("secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * 365 * 24 * time.Hour) }
	token, _, err := svc.GenerateRoleToken(AnonRole)
	if err != nil {
		t.Fatalf("GenerateRoleToken failed: %v", err)
	}

	if _, err := newTestService("secret").ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestValidateTokenMissingRole(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := newTestService("secret").ValidateToken(token); !errors.Is(err, ErrMissingRole) {
		t.Fatalf("expected ErrMissingRole, got %v", err)
	}
}
