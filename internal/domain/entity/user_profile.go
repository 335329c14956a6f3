package entity

import "github.com/google/uuid"

// Role is the single-character role code stored in user_profile.role.
type Role string

const (
	RoleSystemAdmin Role = "S"
	RoleClinicStaff Role = "C"
	RolePatient     Role = "P"
)

// UserProfile represents a login-capable person: administrator, clinic staff or patient.
// ClinicID is set only for clinic staff.
type UserProfile struct {
	ID              uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" validate:"required"`
	Name            string    `gorm:"type:varchar(255);not null" validate:"required"`
	Role            Role      `gorm:"type:char(1);not null" validate:"required,oneof=S C P"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" validate:"required,email"`
	TelephoneNumber string    `gorm:"type:varchar(20)"`
	ClinicID        *int      `gorm:"index"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}

// IsPatient checks if the user is a patient
func (u *UserProfile) IsPatient() bool {
	return u.Role == RolePatient
}

// IsClinicStaff checks if the user is clinic staff
func (u *UserProfile) IsClinicStaff() bool {
	return u.Role == RoleClinicStaff
}
