package repository

import (
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileRepository interface {
	// UpdateByEmail overwrites the profile fields of the row created for the same email
	// and returns the number of rows changed.
	UpdateByEmail(db *gorm.DB, user *entity.UserProfile) (int64, error)
	FindIDsByEmails(db *gorm.DB, emails []string) (map[string]uuid.UUID, error)
	Count(db *gorm.DB) (int64, error)
}
