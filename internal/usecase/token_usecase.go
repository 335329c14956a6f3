package usecase

import (
	"errors"
	"fmt"

	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"
	"github.com/tanzhongyan/Singheatlh/pkg/jwt"
	"github.com/tanzhongyan/Singheatlh/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrInvalidKeys = errors.New("one or more API keys are invalid")

type TokenUsecase interface {
	GenerateKeys() (*dto.TokenPairResponse, error)
	VerifyKeys(reqs []dto.VerifyTokenRequest) ([]dto.TokenVerificationResponse, error)
}

type tokenUsecase struct {
	log        *logrus.Logger
	validator  *validator.CustomValidator
	jwtService *jwt.JWTService
}

func NewTokenUsecase(log *logrus.Logger, validator *validator.CustomValidator, jwtService *jwt.JWTService) TokenUsecase {
	return &tokenUsecase{
		log:        log,
		validator:  validator,
		jwtService: jwtService,
	}
}

// GenerateKeys mints the service_role and anon keys with the same expiry.
func (u *tokenUsecase) GenerateKeys() (*dto.TokenPairResponse, error) {
	serviceKey, claims, err := u.jwtService.GenerateRoleToken(jwt.ServiceRole)
	if err != nil {
		u.log.Errorf("Failed to sign service role key: %+v", err)
		return nil, fmt.Errorf("sign %s key: %w", jwt.ServiceRole, err)
	}

	anonKey, _, err := u.jwtService.GenerateRoleToken(jwt.AnonRole)
	if err != nil {
		u.log.Errorf("Failed to sign anon key: %+v", err)
		return nil, fmt.Errorf("sign %s key: %w", jwt.AnonRole, err)
	}

	u.log.Infof("Generated API keys valid for %s", u.jwtService.GetExpiry())

	return &dto.TokenPairResponse{
		ServiceRoleKey: serviceKey,
		AnonKey:        anonKey,
		ExpiresAt:      claims.ExpiresAt.Time,
	}, nil
}

// VerifyKeys checks every key and reports each one. The error is ErrInvalidKeys when
// at least one key failed; the responses are still returned in that case.
func (u *tokenUsecase) VerifyKeys(reqs []dto.VerifyTokenRequest) ([]dto.TokenVerificationResponse, error) {
	results := make([]dto.TokenVerificationResponse, 0, len(reqs))
	invalid := 0

	for _, req := range reqs {
		result := dto.TokenVerificationResponse{Name: req.Name}

		if err := u.validator.Check(&req); err != nil {
			result.Reason = err.Error()
			results = append(results, result)
			invalid++
			continue
		}

		claims, err := u.jwtService.ValidateToken(req.Token)
		if err != nil {
			u.log.Warnf("Key %s is invalid: %v", req.Name, err)
			result.Reason = err.Error()
			results = append(results, result)
			invalid++
			continue
		}

		result.Valid = true
		result.Role = string(claims.Role)
		result.Issuer = claims.Issuer
		if claims.ExpiresAt != nil {
			result.ExpiresAt = claims.ExpiresAt.Time
		}
		results = append(results, result)
	}

	if invalid > 0 {
		return results, ErrInvalidKeys
	}
	return results, nil
}
