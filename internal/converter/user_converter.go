package converter

import (
	"fmt"
	"strconv"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/google/uuid"
)

// UserProfileToRecord converts a UserProfile entity to a user_profile.csv row
func UserProfileToRecord(user *entity.UserProfile) []string {
	clinicID := ""
	if user.ClinicID != nil {
		clinicID = strconv.Itoa(*user.ClinicID)
	}

	return []string{
		user.ID.String(),
		user.Name,
		string(user.Role),
		user.Email,
		user.TelephoneNumber,
		clinicID,
	}
}

// UserProfilesToRecords converts a slice of UserProfile entities to user_profile.csv rows
func UserProfilesToRecords(users []entity.UserProfile) [][]string {
	records := make([][]string, len(users))
	for i := range users {
		records[i] = UserProfileToRecord(&users[i])
	}
	return records
}

// RecordToUserProfile parses a user_profile.csv row. An empty clinic_id leaves ClinicID nil.
func RecordToUserProfile(record map[string]string) (*entity.UserProfile, error) {
	rawID, err := field(record, ColumnUserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidValue, ColumnUserID, rawID)
	}

	user := &entity.UserProfile{ID: id}
	if user.Name, err = field(record, ColumnName); err != nil {
		return nil, err
	}
	role, err := field(record, ColumnRole)
	if err != nil {
		return nil, err
	}
	user.Role = entity.Role(role)
	if user.Email, err = field(record, ColumnEmail); err != nil {
		return nil, err
	}
	if user.TelephoneNumber, err = field(record, ColumnTelephoneNumber); err != nil {
		return nil, err
	}

	if raw, _ := field(record, ColumnClinicID); raw != "" {
		clinicID, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidValue, ColumnClinicID, raw)
		}
		user.ClinicID = &clinicID
	}

	return user, nil
}
