package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/google/uuid"
)

func TestProvisionUsersCountsFailures(t *testing.T) {
	provider := newFakeIdentityProvider("bob@example.com")
	uc := NewIdentityUsecase(newTestLogger(), provider, "mock-password")

	users := []entity.UserProfile{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", Role: entity.RolePatient},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", Role: entity.RolePatient},
		{ID: uuid.New(), Name: "Carol", Email: "carol@example.com", Role: entity.RoleClinicStaff},
	}

	summary, err := uc.ProvisionUsers(context.Background(), users)
	if err != nil {
		t.Fatalf("ProvisionUsers failed: %v", err)
	}
	if summary.Total != 3 || summary.Created != 2 {
		t.Errorf("expected 2/3 created, got %d/%d", summary.Created, summary.Total)
	}
	if len(summary.Failures) != 1 || summary.Failures[0].Email != "bob@example.com" {
		t.Errorf("unexpected failures %+v", summary.Failures)
	}
	if _, ok := provider.created["carol@example.com"]; !ok {
		t.Error("a failure must not stop later users from being created")
	}
}

func TestProvisionUsersStopsOnCancel(t *testing.T) {
	provider := newFakeIdentityProvider()
	uc := NewIdentityUsecase(newTestLogger(), provider, "mock-password")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := uc.ProvisionUsers(ctx, []entity.UserProfile{{Email: "alice@example.com"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if summary.Created != 0 || len(provider.created) != 0 {
		t.Error("no accounts should be created after cancellation")
	}
}

func TestProvisionFromFile(t *testing.T) {
	dir := t.TempDir()
	res := generateDataset(t, dir)

	provider := newFakeIdentityProvider()
	uc := NewIdentityUsecase(newTestLogger(), provider, "mock-password")

	summary, err := uc.ProvisionFromFile(context.Background(), dir)
	if err != nil {
		t.Fatalf("ProvisionFromFile failed: %v", err)
	}
	if summary.Created != res.summary.Users {
		t.Errorf("expected %d accounts, got %d", res.summary.Users, summary.Created)
	}

	if _, err := uc.ProvisionFromFile(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error when user_profile.csv is missing")
	}
}
