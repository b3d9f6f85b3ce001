package wizard

import (
	"context"
	"time"

	"odontocarol/clinicapi"
	"odontocarol/models"
	"odontocarol/services/schedule"
)

// ClinicAPI is the slice of the clinic backend the wizard consumes.
type ClinicAPI interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListActiveClinicians(ctx context.Context) ([]models.StaffMember, error)
	GetWorkDayNames(ctx context.Context, providerID int) ([]string, error)
	GetDayAvailability(ctx context.Context, providerID int, date string) ([]clinicapi.ScheduleWindow, error)
	LookupPatient(ctx context.Context, email string) (*models.PatientLookupResult, error)
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.AppointmentResult, error)
}

// ReminderScheduler enqueues an appointment reminder to fire at a given time.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// IdentityOutcome is the identification step result. Warning is non-empty
// when both contact channels were omitted; it never blocks completion.
type IdentityOutcome struct {
	Session *models.BookingSession
	Warning string
}

// BookingWizardService drives a patient's booking session through its steps.
type BookingWizardService interface {
	StartSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Retreat(ctx context.Context, sessionID string) (*models.BookingSession, error)
	CancelSession(ctx context.Context, sessionID string) error

	GetServices(ctx context.Context) ([]models.Service, error)
	LookupPatient(ctx context.Context, sessionID, email string) (*models.PatientLookupResult, *models.BookingSession, error)
	SubmitIdentity(ctx context.Context, sessionID string, input models.IdentityInput) (*IdentityOutcome, error)

	AssignProvider(ctx context.Context, sessionID string) (*models.BookingSession, error)

	MonthGrid(ctx context.Context, sessionID string, year int, month time.Month) (*models.CalendarMonth, error)
	SelectDate(ctx context.Context, sessionID string, input models.DateSelectionInput) (*models.DayAvailability, error)
	SelectSlot(ctx context.Context, sessionID string, input models.SlotSelectionInput) (*models.BookingSession, error)

	Confirm(ctx context.Context, sessionID string) (*models.BookingConfirmation, error)
}

// DefaultBookingWizardService implements BookingWizardService.
type DefaultBookingWizardService struct {
	Clinic            ClinicAPI
	Sessions          SessionStore
	Clock             schedule.Clock
	Reminders         ReminderScheduler // optional
	ReminderLeadHours int
}

func (s *DefaultBookingWizardService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

func (s *DefaultBookingWizardService) clock() schedule.Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return schedule.SystemClock{}
}
