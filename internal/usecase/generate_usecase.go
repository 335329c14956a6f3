package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/converter"
	"github.com/tanzhongyan/Singheatlh/internal/delivery/dto"
	"github.com/tanzhongyan/Singheatlh/internal/generator"
	"github.com/tanzhongyan/Singheatlh/internal/infrastructure/csvfile"
	"github.com/tanzhongyan/Singheatlh/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoClinics        = errors.New("no clinics found in clinics.csv")
	ErrInvalidGenerated = errors.New("generated record failed validation")
)

type GenerateUsecase interface {
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateSummary, error)
}

type generateUsecase struct {
	log       *logrus.Logger
	validator *validator.CustomValidator
}

func NewGenerateUsecase(log *logrus.Logger, validator *validator.CustomValidator) GenerateUsecase {
	return &generateUsecase{
		log:       log,
		validator: validator,
	}
}

// Generate runs the whole pipeline against the clinics.csv found in the output directory
// and writes one CSV per entity next to it.
func (u *generateUsecase) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateSummary, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := generator.NewSource(seed)
	today := req.Today.UTC().Truncate(24 * time.Hour)

	summary := &dto.GenerateSummary{
		OutputDir:             req.OutputDir,
		Seed:                  seed,
		Today:                 today.Format("2006-01-02"),
		AppointmentsRequested: req.NumAppointments,
		QueueStatus:           make(map[string]int),
	}

	records, err := csvfile.ReadRecords(filepath.Join(req.OutputDir, ClinicsFile))
	if err != nil {
		u.log.Warnf("Failed to read clinics: %+v", err)
		return nil, err
	}

	clinics, warnings := generator.LoadClinics(records)
	for _, w := range warnings {
		u.log.Warnf("Clinic %d (%s) %s %q: %s", w.ClinicID, w.Name, w.Field, w.Raw, w.Reason)
		summary.ClinicWarnings = append(summary.ClinicWarnings, dto.ClinicWarningResponse{
			ClinicID: w.ClinicID,
			Name:     w.Name,
			Field:    w.Field,
			Raw:      w.Raw,
			Reason:   w.Reason,
		})
	}
	if len(clinics) == 0 {
		return nil, ErrNoClinics
	}
	summary.Clinics = len(clinics)
	u.log.Infof("Loaded %d clinics", len(clinics))

	users := generator.GenerateUsers(src, len(clinics), req.NumPatients)
	for i := range users {
		if err := u.validator.Check(&users[i]); err != nil {
			return nil, fmt.Errorf("%w: user %s: %v", ErrInvalidGenerated, users[i].Email, err)
		}
	}
	patients := generator.PatientIDs(users)
	summary.Users = len(users)
	summary.Patients = len(patients)

	doctors := generator.GenerateDoctors(src, len(clinics))
	summary.Doctors = len(doctors)

	window := generator.NewWindow(today, req.ScheduleEndDate, req.HistoryDays)
	schedules, err := generator.GenerateSchedules(src, doctors, clinics, window)
	if err != nil {
		u.log.Warnf("Failed to generate schedules: %+v", err)
		return nil, err
	}
	summary.Schedules = len(schedules)

	appointmentGenerator := generator.NewAppointmentGenerator(src, generator.AppointmentOptions{
		Target:        req.NumAppointments,
		AttemptFactor: req.AttemptFactor,
		Today:         today,
	})
	result, err := appointmentGenerator.Generate(schedules, patients, doctors)
	if err != nil {
		u.log.Warnf("Failed to generate appointments: %+v", err)
		return nil, err
	}
	summary.AppointmentsGenerated = len(result.Appointments)
	summary.AppointmentAttempts = result.Attempts
	if result.Underfilled() {
		summary.Underfilled = true
		u.log.Warnf("Appointment target not reached: requested=%d generated=%d attempts=%d",
			result.Requested, len(result.Appointments), result.Attempts)
	}

	summaries := generator.GenerateMedicalSummaries(src, result.Appointments)
	summary.MedicalSummaries = len(summaries)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputs := []struct {
		file   string
		header []string
		rows   [][]string
	}{
		{UserProfileFile, converter.UserProfileHeader, converter.UserProfilesToRecords(users)},
		{DoctorFile, converter.DoctorHeader, converter.DoctorsToRecords(doctors)},
		{ScheduleFile, converter.ScheduleHeader, converter.SchedulesToRecords(schedules)},
		{AppointmentFile, converter.AppointmentHeader, converter.AppointmentsToRecords(result.Appointments)},
		{MedicalSummaryFile, converter.MedicalSummaryHeader, converter.MedicalSummariesToRecords(summaries)},
	}
	for _, out := range outputs {
		if err := u.write(out.file, req.OutputDir, out.header, out.rows); err != nil {
			return nil, err
		}
		summary.Files = append(summary.Files, out.file)
	}

	queue := generator.SimulateQueue(src, result.Appointments, today)
	if err := u.write(QueueTicketFile, req.OutputDir, converter.QueueTicketHeader, converter.QueueTicketsToRecords(queue.Tickets)); err != nil {
		return nil, err
	}
	summary.Files = append(summary.Files, QueueTicketFile)
	summary.QueueTickets = len(queue.Tickets)
	for status, count := range queue.StatusCounts() {
		summary.QueueStatus[string(status)] = count
	}

	reconciled, missed := generator.ReconcileNoShows(result.Appointments, queue.NoShowIDs)
	summary.NoShows = missed
	if missed > 0 {
		if err := u.write(AppointmentFile, req.OutputDir, converter.AppointmentHeader, converter.AppointmentsToRecords(reconciled)); err != nil {
			return nil, err
		}
		u.log.Infof("Marked %d no-show appointments as Missed", missed)
	}

	u.log.WithFields(logrus.Fields{
		"seed":         seed,
		"users":        summary.Users,
		"doctors":      summary.Doctors,
		"schedules":    summary.Schedules,
		"appointments": summary.AppointmentsGenerated,
		"summaries":    summary.MedicalSummaries,
		"tickets":      summary.QueueTickets,
		"no_shows":     summary.NoShows,
	}).Info("Mock data generated")

	return summary, nil
}

func (u *generateUsecase) write(file, dir string, header []string, rows [][]string) error {
	path := filepath.Join(dir, file)
	if err := csvfile.WriteRecords(path, header, rows); err != nil {
		u.log.Warnf("Failed to write %s: %+v", file, err)
		return err
	}
	u.log.Infof("Wrote %d rows to %s", len(rows), path)
	return nil
}
