package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/tanzhongyan/Singheatlh/config"
	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"
	"github.com/tanzhongyan/Singheatlh/pkg/jwt"
	"github.com/tanzhongyan/Singheatlh/pkg/validator"
)

func newTestTokenUsecase(secret string) TokenUsecase {
	svc := jwt.NewJWTService(config.JWTConfig{Secret: secret, Issuer: "supabase", Expiry: 24 * time.Hour})
	return NewTokenUsecase(newTestLogger(), validator.NewValidator(), svc)
}

func TestGenerateAndVerifyKeys(t *testing.T) {
	uc := newTestTokenUsecase("your-super-secret-jwt-token-with-at-least-32-characters-long")

	pair, err := uc.GenerateKeys()
	if err != nil {
		t.Fatalf("GenerateKeys failed: %v", err)
	}
	if pair.ServiceRoleKey == "" || pair.AnonKey == "" || pair.ServiceRoleKey == pair.AnonKey {
		t.Fatalf("unexpected key pair %+v", pair)
	}

	results, err := uc.VerifyKeys([]dto.VerifyTokenRequest{
		{Name: "SERVICE_ROLE_KEY", Token: pair.ServiceRoleKey},
		{Name: "ANON_KEY", Token: pair.AnonKey},
	})
	if err != nil {
		t.Fatalf("VerifyKeys failed: %v", err)
	}

	want := map[string]string{"SERVICE_ROLE_KEY": "service_role", "ANON_KEY": "anon"}
	for _, r := range results {
		if !r.Valid || r.Role != want[r.Name] || r.Issuer != "supabase" {
			t.Errorf("unexpected result %+v", r)
		}
		if !r.ExpiresAt.Equal(pair.ExpiresAt) {
			t.Errorf("%s expires at %v, want %v", r.Name, r.ExpiresAt, pair.ExpiresAt)
		}
	}
}

func TestVerifyKeysReportsInvalid(t *testing.T) {
	pair, err := newTestTokenUsecase("first-secret").GenerateKeys()
	if err != nil {
		t.Fatalf("GenerateKeys failed: %v", err)
	}

	uc := newTestTokenUsecase("second-secret")
	results, err := uc.VerifyKeys([]dto.VerifyTokenRequest{
		{Name: "SERVICE_ROLE_KEY", Token: pair.ServiceRoleKey},
		{Name: "ANON_KEY", Token: ""},
	})
	if !errors.Is(err, ErrInvalidKeys) {
		t.Fatalf("expected ErrInvalidKeys, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Valid || r.Reason == "" {
			t.Errorf("expected %s to be invalid with a reason, got %+v", r.Name, r)
		}
	}
}
