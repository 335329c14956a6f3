package generator

import (
	"fmt"
	"strings"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	adminName   = "System Admin"
	adminEmail  = "admin@system.com"
	adminPhone  = "+6512345678"
	emailDomain = "example.com"

	minStaffPerClinic = 1
	maxStaffPerClinic = 2
)

// GenerateUsers builds the user population: one administrator, one or two staff
// members per clinic and numPatients patients. Emails carry a running counter so
// they stay unique even when names repeat.
func GenerateUsers(src Source, numClinics, numPatients int) []entity.UserProfile {
	names := namePermutations()
	src.ShuffleStrings(names)

	users := make([]entity.UserProfile, 0, 1+numClinics*maxStaffPerClinic+numPatients)
	users = append(users, entity.UserProfile{
		ID:              newUserID(src),
		Name:            adminName,
		Role:            entity.RoleSystemAdmin,
		Email:           adminEmail,
		TelephoneNumber: adminPhone,
	})

	nameIdx := 0
	emailCounter := 1
	nextPerson := func(role entity.Role, clinicID *int) entity.UserProfile {
		name := names[nameIdx%len(names)]
		nameIdx++
		email := personalEmail(name, emailCounter)
		emailCounter++
		return entity.UserProfile{
			ID:              newUserID(src),
			Name:            name,
			Role:            role,
			Email:           email,
			TelephoneNumber: phoneNumber(src),
			ClinicID:        clinicID,
		}
	}

	for clinicID := 1; clinicID <= numClinics; clinicID++ {
		staff := src.IntRange(minStaffPerClinic, maxStaffPerClinic)
		for i := 0; i < staff; i++ {
			id := clinicID
			users = append(users, nextPerson(entity.RoleClinicStaff, &id))
		}
	}

	for i := 0; i < numPatients; i++ {
		users = append(users, nextPerson(entity.RolePatient, nil))
	}

	return users
}

// PatientIDs returns the ids of every patient in users, in order.
func PatientIDs(users []entity.UserProfile) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(users))
	for i := range users {
		if users[i].IsPatient() {
			ids = append(ids, users[i].ID)
		}
	}
	return ids
}

func personalEmail(name string, counter int) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s+%d@%s", local, counter, emailDomain)
}

func phoneNumber(src Source) string {
	return fmt.Sprintf("+659%d", src.IntRange(1000000, 9999999))
}
