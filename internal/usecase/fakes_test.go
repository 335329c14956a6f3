package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	"github.com/tanzhongyan/Singheatlh/internal/infrastructure/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeTable[T any] struct {
	rows []T
	err  error
}

func (f *fakeTable[T]) CopyFrom(ctx context.Context, db *gorm.DB, rows []T) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.rows = append(f.rows, rows...)
	return int64(len(rows)), nil
}

func (f *fakeTable[T]) Count(db *gorm.DB) (int64, error) {
	return int64(len(f.rows)), nil
}

// fakeQueueTicketRepo joins its tickets against the appointments loaded into the
// appointment fake, as the real query joins the appointment table.
type fakeQueueTicketRepo struct {
	fakeTable[entity.QueueTicket]
	appointments *fakeTable[entity.Appointment]
}

func (f *fakeQueueTicketRepo) LatestCheckInDay(db *gorm.DB) (time.Time, bool, error) {
	var latest time.Time
	for _, t := range f.rows {
		if t.CheckInTime.After(latest) {
			latest = t.CheckInTime
		}
	}
	if latest.IsZero() {
		return time.Time{}, false, nil
	}
	return latest.Truncate(24 * time.Hour), true, nil
}

func (f *fakeQueueTicketRepo) MaxQueueNumbersByDoctor(db *gorm.DB, day time.Time) ([]entity.DoctorQueueCounter, error) {
	doctorOf := make(map[string]string, len(f.appointments.rows))
	for _, a := range f.appointments.rows {
		doctorOf[a.ID] = a.DoctorID
	}

	byDoctor := make(map[string]*entity.DoctorQueueCounter)
	var counters []entity.DoctorQueueCounter
	var order []string
	for _, t := range f.rows {
		if !t.CheckInTime.Truncate(24*time.Hour).Equal(day) || t.QueueNumber <= 0 {
			continue
		}
		doctorID, ok := doctorOf[t.AppointmentID]
		if !ok {
			continue
		}
		c, ok := byDoctor[doctorID]
		if !ok {
			c = &entity.DoctorQueueCounter{DoctorID: doctorID}
			byDoctor[doctorID] = c
			order = append(order, doctorID)
		}
		c.Tickets++
		if t.QueueNumber > c.MaxQueueNumber {
			c.MaxQueueNumber = t.QueueNumber
		}
	}
	for _, doctorID := range order {
		counters = append(counters, *byDoctor[doctorID])
	}
	return counters, nil
}

type fakeSchemaRepo struct {
	pingFailures int
	pings        int
	tablesErr    error
	migrations   []entity.SchemaMigration
}

func (f *fakeSchemaRepo) Ping(ctx context.Context, db *gorm.DB) error {
	f.pings++
	if f.pings <= f.pingFailures {
		return errors.New("connection refused")
	}
	return nil
}

func (f *fakeSchemaRepo) TablesReady(db *gorm.DB) error {
	return f.tablesErr
}

func (f *fakeSchemaRepo) Migrations(db *gorm.DB) ([]entity.SchemaMigration, error) {
	return f.migrations, nil
}

func (f *fakeSchemaRepo) FunctionExists(db *gorm.DB, schema, name string) (bool, error) {
	return true, nil
}

func (f *fakeSchemaRepo) TriggerExists(db *gorm.DB, name string) (bool, error) {
	return true, nil
}

// fakeUserProfileRepo plays the database side of the auth trigger: every email the
// identity provider accepted has a profile row with a server-assigned id.
type fakeUserProfileRepo struct {
	provider *fakeIdentityProvider
	updated  map[string]entity.UserProfile
}

func (f *fakeUserProfileRepo) UpdateByEmail(db *gorm.DB, user *entity.UserProfile) (int64, error) {
	if _, ok := f.provider.created[user.Email]; !ok {
		return 0, nil
	}
	if f.updated == nil {
		f.updated = make(map[string]entity.UserProfile)
	}
	f.updated[user.Email] = *user
	return 1, nil
}

func (f *fakeUserProfileRepo) FindIDsByEmails(db *gorm.DB, emails []string) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID)
	for _, email := range emails {
		if id, ok := f.provider.created[email]; ok {
			ids[email] = id
		}
	}
	return ids, nil
}

func (f *fakeUserProfileRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(f.provider.created)), nil
}

type fakeIdentityProvider struct {
	reject  map[string]bool
	created map[string]uuid.UUID
}

func newFakeIdentityProvider(reject ...string) *fakeIdentityProvider {
	f := &fakeIdentityProvider{reject: make(map[string]bool), created: make(map[string]uuid.UUID)}
	for _, email := range reject {
		f.reject[email] = true
	}
	return f
}

func (f *fakeIdentityProvider) CreateUser(ctx context.Context, user identity.NewUser) (*identity.CreatedUser, error) {
	if f.reject[user.Email] {
		return nil, identity.ErrUnexpectedStatus
	}
	id := uuid.New()
	f.created[user.Email] = id
	return &identity.CreatedUser{ID: id, Email: user.Email}, nil
}

type fakeQueueCounterService struct {
	day      time.Time
	counters []entity.DoctorQueueCounter
}

func (f *fakeQueueCounterService) SyncCounters(ctx context.Context, day time.Time, counters []entity.DoctorQueueCounter) (int, error) {
	f.day = day
	f.counters = counters
	return len(counters), nil
}
