package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tanzhongyan/Singheatlh/config"
	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"
	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	"github.com/tanzhongyan/Singheatlh/internal/domain/repository"
	"github.com/tanzhongyan/Singheatlh/internal/generator"
	"github.com/tanzhongyan/Singheatlh/internal/infrastructure/csvfile"
	"github.com/tanzhongyan/Singheatlh/internal/service"
	"github.com/tanzhongyan/Singheatlh/pkg/validator"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	authFunctionSchema = "public"
	authFunctionName   = "handle_new_user"
	authTriggerName    = "on_auth_user_created"
)

var (
	ErrDatabaseNotReady   = errors.New("database did not become ready")
	ErrTablesNotReady     = errors.New("tables not found, have the backend migrations run?")
	ErrMissingMigrations  = errors.New("no flyway migrations found")
	ErrNoProfilesUpdated  = errors.New("no user profiles were updated, is the auth trigger installed?")
	ErrEmptyClinicDataset = errors.New("clinics.csv has no rows")
)

type SeedUsecase interface {
	Seed(ctx context.Context, req *dto.SeedRequest) (*dto.SeedSummary, error)
}

type seedUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	validator           *validator.CustomValidator
	cfg                 config.SeederConfig
	schemaRepo          repository.SchemaRepository
	clinicRepo          repository.ClinicRepository
	doctorRepo          repository.DoctorRepository
	userProfileRepo     repository.UserProfileRepository
	appointmentRepo     repository.AppointmentRepository
	scheduleRepo        repository.ScheduleRepository
	medicalSummaryRepo  repository.MedicalSummaryRepository
	queueTicketRepo     repository.QueueTicketRepository
	identityUsecase     IdentityUsecase
	queueCounterService service.QueueCounterService
}

// NewSeedUsecase wires the seeder. queueCounterService may be nil when Redis is not configured.
func NewSeedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	cfg config.SeederConfig,
	schemaRepo repository.SchemaRepository,
	clinicRepo repository.ClinicRepository,
	doctorRepo repository.DoctorRepository,
	userProfileRepo repository.UserProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.ScheduleRepository,
	medicalSummaryRepo repository.MedicalSummaryRepository,
	queueTicketRepo repository.QueueTicketRepository,
	identityUsecase IdentityUsecase,
	queueCounterService service.QueueCounterService,
) SeedUsecase {
	return &seedUsecase{
		db:                  db,
		log:                 log,
		validator:           validator,
		cfg:                 cfg,
		schemaRepo:          schemaRepo,
		clinicRepo:          clinicRepo,
		doctorRepo:          doctorRepo,
		userProfileRepo:     userProfileRepo,
		appointmentRepo:     appointmentRepo,
		scheduleRepo:        scheduleRepo,
		medicalSummaryRepo:  medicalSummaryRepo,
		queueTicketRepo:     queueTicketRepo,
		identityUsecase:     identityUsecase,
		queueCounterService: queueCounterService,
	}
}

// dataset is every CSV the seeder loads, parsed up front so a malformed file fails
// before anything is written.
type dataset struct {
	clinics      []entity.Clinic
	doctors      []entity.Doctor
	users        []entity.UserProfile
	appointments []entity.Appointment
	schedules    []entity.Schedule
	summaries    []entity.MedicalSummary
	tickets      []entity.QueueTicket
}

func (u *seedUsecase) Seed(ctx context.Context, req *dto.SeedRequest) (*dto.SeedSummary, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	data, err := u.loadDataset(req.DataDir)
	if err != nil {
		u.log.Warnf("Failed to read dataset from %s: %+v", req.DataDir, err)
		return nil, err
	}

	summary := &dto.SeedSummary{}
	db := u.db.WithContext(ctx)

	u.log.Info("[1/11] Checking database readiness...")
	if summary.Migrations, err = u.checkReadiness(ctx, db); err != nil {
		return nil, err
	}

	u.log.Info("[2/11] Loading clinic data...")
	if summary.Clinics, err = u.load(ctx, "clinic", func() (int64, error) {
		if _, err := u.clinicRepo.CopyFrom(ctx, db, data.clinics); err != nil {
			return 0, err
		}
		return u.clinicRepo.Count(db)
	}); err != nil {
		return nil, err
	}

	u.log.Info("[3/11] Loading doctor data...")
	if summary.Doctors, err = u.load(ctx, "doctor", func() (int64, error) {
		if _, err := u.doctorRepo.CopyFrom(ctx, db, data.doctors); err != nil {
			return 0, err
		}
		return u.doctorRepo.Count(db)
	}); err != nil {
		return nil, err
	}

	u.log.Info("[4/11] Creating auth users...")
	if summary.Identity, err = u.identityUsecase.ProvisionUsers(ctx, data.users); err != nil {
		return nil, err
	}

	u.log.Info("[5/11] Updating user profiles...")
	if summary.ProfilesUpdated, err = u.updateProfiles(db, data.users); err != nil {
		return nil, err
	}
	if summary.Users, err = u.userProfileRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count user profiles: %+v", err)
		return nil, err
	}
	u.log.Infof("Updated %d user profiles (total: %d users)", summary.ProfilesUpdated, summary.Users)

	u.log.Info("[6/11] Mapping generated user ids to server ids...")
	appointments, dropped, err := u.remapAppointments(db, data.users, data.appointments)
	if err != nil {
		return nil, err
	}
	summary.AppointmentsDropped = dropped

	loaded := make(map[string]struct{}, len(appointments))
	for i := range appointments {
		loaded[appointments[i].ID] = struct{}{}
	}
	summaries, summariesDropped := keepLoadedAppointments(data.summaries, loaded,
		func(s *entity.MedicalSummary) string { return s.AppointmentID })
	tickets, ticketsDropped := keepLoadedAppointments(data.tickets, loaded,
		func(t *entity.QueueTicket) string { return t.AppointmentID })
	summary.SummariesDropped = summariesDropped
	summary.TicketsDropped = ticketsDropped
	if summariesDropped > 0 || ticketsDropped > 0 {
		u.log.Warnf("Dropped %d medical summaries and %d queue tickets of dropped appointments",
			summariesDropped, ticketsDropped)
	}

	u.log.Info("[7/11] Loading appointment data...")
	if summary.Appointments, err = u.load(ctx, "appointment", func() (int64, error) {
		if _, err := u.appointmentRepo.CopyFrom(ctx, db, appointments); err != nil {
			return 0, err
		}
		return u.appointmentRepo.Count(db)
	}); err != nil {
		return nil, err
	}

	u.log.Info("[8/11] Loading schedule data...")
	if summary.Schedules, err = u.load(ctx, "schedule", func() (int64, error) {
		if _, err := u.scheduleRepo.CopyFrom(ctx, db, data.schedules); err != nil {
			return 0, err
		}
		return u.scheduleRepo.Count(db)
	}); err != nil {
		return nil, err
	}

	u.log.Info("[9/11] Loading medical summary data...")
	if summary.MedicalSummaries, err = u.load(ctx, "medical_summary", func() (int64, error) {
		if _, err := u.medicalSummaryRepo.CopyFrom(ctx, db, summaries); err != nil {
			return 0, err
		}
		return u.medicalSummaryRepo.Count(db)
	}); err != nil {
		return nil, err
	}

	u.log.Info("[10/11] Loading queue ticket data...")
	if summary.QueueTickets, err = u.load(ctx, "queue_ticket", func() (int64, error) {
		if _, err := u.queueTicketRepo.CopyFrom(ctx, db, tickets); err != nil {
			return 0, err
		}
		return u.queueTicketRepo.Count(db)
	}); err != nil {
		return nil, err
	}

	u.log.Info("[11/11] Warming queue counters...")
	summary.QueueCounters = u.warmQueueCounters(ctx, db)

	u.log.WithFields(logrus.Fields{
		"clinics":      summary.Clinics,
		"doctors":      summary.Doctors,
		"users":        summary.Users,
		"appointments": summary.Appointments,
		"schedules":    summary.Schedules,
		"summaries":    summary.MedicalSummaries,
		"tickets":      summary.QueueTickets,
	}).Info("Seeding completed")

	return summary, nil
}

func (u *seedUsecase) loadDataset(dir string) (*dataset, error) {
	var (
		data dataset
		err  error
	)

	records, err := csvfile.ReadRecords(filepath.Join(dir, ClinicsFile))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyClinicDataset
	}
	var warnings []generator.ClinicWarning
	data.clinics, warnings = generator.LoadClinics(records)
	for _, w := range warnings {
		u.log.Warnf("Clinic %d (%s) %s %q: %s", w.ClinicID, w.Name, w.Field, w.Raw, w.Reason)
	}

	if data.doctors, err = readDataset(dir, DoctorFile, converter.RecordToDoctor); err != nil {
		return nil, err
	}
	if data.users, err = readDataset(dir, UserProfileFile, converter.RecordToUserProfile); err != nil {
		return nil, err
	}
	if data.appointments, err = readDataset(dir, AppointmentFile, converter.RecordToAppointment); err != nil {
		return nil, err
	}
	if data.schedules, err = readDataset(dir, ScheduleFile, converter.RecordToSchedule); err != nil {
		return nil, err
	}
	if data.summaries, err = readDataset(dir, MedicalSummaryFile, converter.RecordToMedicalSummary); err != nil {
		return nil, err
	}
	if data.tickets, err = readDataset(dir, QueueTicketFile, converter.RecordToQueueTicket); err != nil {
		return nil, err
	}

	return &data, nil
}

// checkReadiness waits for the database and its tables, then verifies the backend
// migrations. A missing auth trigger is only a warning. Returns the migration count.
func (u *seedUsecase) checkReadiness(ctx context.Context, db *gorm.DB) (int, error) {
	if err := u.waitFor(ctx, "PostgreSQL", func() error { return u.schemaRepo.Ping(ctx, db) }); err != nil {
		return 0, errors.Join(ErrDatabaseNotReady, err)
	}
	u.log.Info("PostgreSQL is ready")

	if err := u.waitFor(ctx, "Tables", func() error { return u.schemaRepo.TablesReady(db) }); err != nil {
		return 0, errors.Join(ErrTablesNotReady, err)
	}
	u.log.Info("Tables are ready")

	migrations, err := u.schemaRepo.Migrations(db)
	if err != nil {
		u.log.Errorf("Failed to verify migrations: %+v", err)
		return 0, err
	}
	if len(migrations) == 0 {
		return 0, ErrMissingMigrations
	}
	for _, m := range migrations {
		u.log.Infof("Migration V%s: %s", m.Version, m.Description)
	}

	u.verifyAuthTrigger(db)
	return len(migrations), nil
}

func (u *seedUsecase) waitFor(ctx context.Context, what string, check func() error) error {
	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		if err := check(); err != nil {
			u.log.Debugf("%s not ready (attempt %d/%d): %v", what, attempt, u.cfg.MaxRetries, err)
			return struct{}{}, err
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(u.cfg.RetryInterval)),
		backoff.WithMaxTries(uint(u.cfg.MaxRetries)),
	)
	if err != nil {
		u.log.Errorf("%s not ready after %d attempts: %+v", what, attempt, err)
	}
	return err
}

func (u *seedUsecase) verifyAuthTrigger(db *gorm.DB) {
	functionExists, err := u.schemaRepo.FunctionExists(db, authFunctionSchema, authFunctionName)
	if err != nil {
		u.log.Warnf("Could not verify auth trigger: %+v", err)
		return
	}
	triggerExists, err := u.schemaRepo.TriggerExists(db, authTriggerName)
	if err != nil {
		u.log.Warnf("Could not verify auth trigger: %+v", err)
		return
	}

	switch {
	case functionExists && triggerExists:
		u.log.Info("Auth trigger function and trigger exist")
	case functionExists:
		u.log.Warn("Function exists but trigger on auth.users not found")
	case triggerExists:
		u.log.Warn("Trigger exists but function not found")
	default:
		u.log.Warn("Neither auth function nor trigger found, user profiles will not be created")
	}
}

func (u *seedUsecase) load(ctx context.Context, table string, run func() (int64, error)) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := run()
	if err != nil {
		u.log.Errorf("Failed to load %s: %+v", table, err)
		return 0, fmt.Errorf("load %s: %w", table, err)
	}
	u.log.Infof("Loaded %d rows into %s", count, table)
	return count, nil
}

// updateProfiles copies generated profile fields onto the rows the auth trigger created.
func (u *seedUsecase) updateProfiles(db *gorm.DB, users []entity.UserProfile) (int64, error) {
	var updated int64
	for i := range users {
		n, err := u.userProfileRepo.UpdateByEmail(db, &users[i])
		if err != nil {
			u.log.Warnf("Failed to update user profile %s: %+v", users[i].Email, err)
			return updated, err
		}
		updated += n
	}
	if updated == 0 && len(users) > 0 {
		return 0, ErrNoProfilesUpdated
	}
	return updated, nil
}

func (u *seedUsecase) remapAppointments(db *gorm.DB, users []entity.UserProfile, appointments []entity.Appointment) ([]entity.Appointment, int, error) {
	emails := make([]string, len(users))
	for i := range users {
		emails[i] = users[i].Email
	}

	serverIDs, err := u.userProfileRepo.FindIDsByEmails(db, emails)
	if err != nil {
		u.log.Warnf("Failed to look up user ids: %+v", err)
		return nil, 0, err
	}

	remapped, dropped := RemapPatientIDs(users, serverIDs, appointments)
	if dropped > 0 {
		u.log.Warnf("Dropped %d appointments whose patient has no account", dropped)
	}
	return remapped, dropped, nil
}

// RemapPatientIDs rewrites each appointment's patient from the generated user id to the
// id the server assigned to the same email. Appointments without a match are dropped.
func RemapPatientIDs(users []entity.UserProfile, serverIDs map[string]uuid.UUID, appointments []entity.Appointment) ([]entity.Appointment, int) {
	mapping := make(map[uuid.UUID]uuid.UUID, len(users))
	for i := range users {
		if id, ok := serverIDs[users[i].Email]; ok {
			mapping[users[i].ID] = id
		}
	}

	remapped := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		id, ok := mapping[a.PatientID]
		if !ok {
			continue
		}
		a.PatientID = id
		remapped = append(remapped, a)
	}
	return remapped, len(appointments) - len(remapped)
}

// keepLoadedAppointments drops rows whose appointment is not among loaded.
func keepLoadedAppointments[T any](rows []T, loaded map[string]struct{}, appointmentID func(*T) string) ([]T, int) {
	kept := make([]T, 0, len(rows))
	for i := range rows {
		if _, ok := loaded[appointmentID(&rows[i])]; ok {
			kept = append(kept, rows[i])
		}
	}
	return kept, len(rows) - len(kept)
}

// warmQueueCounters is best effort; the dataset is already loaded when it runs.
func (u *seedUsecase) warmQueueCounters(ctx context.Context, db *gorm.DB) int {
	if u.queueCounterService == nil {
		u.log.Info("Redis not configured, skipping queue counters")
		return 0
	}

	day, ok, err := u.queueTicketRepo.LatestCheckInDay(db)
	if err != nil {
		u.log.Warnf("Failed to find latest check-in day: %+v", err)
		return 0
	}
	if !ok {
		u.log.Info("No queue tickets, skipping queue counters")
		return 0
	}

	counters, err := u.queueTicketRepo.MaxQueueNumbersByDoctor(db, day)
	if err != nil {
		u.log.Warnf("Failed to compute queue counters: %+v", err)
		return 0
	}

	synced, err := u.queueCounterService.SyncCounters(ctx, day, counters)
	if err != nil {
		u.log.Warnf("Failed to sync queue counters: %+v", err)
	}
	return synced
}
