package usecase

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	"github.com/tanzhongyan/Singheatlh/internal/infrastructure/identity"

	"github.com/sirupsen/logrus"
)

// IdentityProvider creates login accounts in the external identity service.
type IdentityProvider interface {
	CreateUser(ctx context.Context, user identity.NewUser) (*identity.CreatedUser, error)
}

type IdentityUsecase interface {
	ProvisionUsers(ctx context.Context, users []entity.UserProfile) (*dto.IdentitySummary, error)
	ProvisionFromFile(ctx context.Context, dataDir string) (*dto.IdentitySummary, error)
}

type identityUsecase struct {
	log          *logrus.Logger
	provider     IdentityProvider
	mockPassword string
}

func NewIdentityUsecase(log *logrus.Logger, provider IdentityProvider, mockPassword string) IdentityUsecase {
	return &identityUsecase{
		log:          log,
		provider:     provider,
		mockPassword: mockPassword,
	}
}

// ProvisionUsers creates one account per user with the shared mock password.
// Individual failures are logged and counted; only cancellation aborts the run.
func (u *identityUsecase) ProvisionUsers(ctx context.Context, users []entity.UserProfile) (*dto.IdentitySummary, error) {
	summary := &dto.IdentitySummary{Total: len(users)}
	u.log.Infof("Creating %d auth users...", len(users))

	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		_, err := u.provider.CreateUser(ctx, identity.NewUser{
			Email:    user.Email,
			Password: u.mockPassword,
			Name:     user.Name,
		})
		if err != nil {
			u.log.Warnf("Failed to create %s: %+v", user.Email, err)
			summary.Failures = append(summary.Failures, dto.IdentityFailure{Email: user.Email, Reason: err.Error()})
			continue
		}
		summary.Created++
	}

	u.log.Infof("Auth users created (%d/%d)", summary.Created, summary.Total)
	return summary, nil
}

func (u *identityUsecase) ProvisionFromFile(ctx context.Context, dataDir string) (*dto.IdentitySummary, error) {
	users, err := readDataset(dataDir, UserProfileFile, converter.RecordToUserProfile)
	if err != nil {
		u.log.Warnf("Failed to read user profiles: %+v", err)
		return nil, err
	}
	return u.ProvisionUsers(ctx, users)
}
