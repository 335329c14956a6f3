package repository

import (
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	domainRepo "github.com/tanzhongyan/Singheatlh/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userProfileRepository struct{}

func NewUserProfileRepository() domainRepo.UserProfileRepository {
	return &userProfileRepository{}
}

func (r *userProfileRepository) UpdateByEmail(db *gorm.DB, user *entity.UserProfile) (int64, error) {
	result := db.Model(&entity.UserProfile{}).
		Where("email = ?", user.Email).
		Updates(map[string]any{
			"name":             user.Name,
			"role":             string(user.Role),
			"telephone_number": user.TelephoneNumber,
			"clinic_id":        user.ClinicID,
		})
	return result.RowsAffected, result.Error
}

func (r *userProfileRepository) FindIDsByEmails(db *gorm.DB, emails []string) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(emails))
	if len(emails) == 0 {
		return ids, nil
	}

	var rows []struct {
		Email  string
		UserID uuid.UUID
	}
	err := db.Model(&entity.UserProfile{}).
		Select("email, user_id").
		Where("email IN ?", emails).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		ids[row.Email] = row.UserID
	}
	return ids, nil
}

func (r *userProfileRepository) Count(db *gorm.DB) (int64, error) {
	return countRows(db, &entity.UserProfile{})
}
