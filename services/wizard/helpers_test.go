package wizard

import (
	"context"
	"testing"
	"time"

	"odontocarol/clinicapi"
	"odontocarol/models"
	"odontocarol/services/schedule"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// fakeClinic is an in-memory ClinicAPI recording every call.
type fakeClinic struct {
	services     []models.Service
	servicesErr  error
	staff        []models.StaffMember
	staffErr     error
	workDayNames []string
	windows      map[string][]clinicapi.ScheduleWindow
	lookup       map[string]*models.PatientLookupResult

	createResult *models.AppointmentResult
	createErr    error

	availabilityFetches []string
	createRequests      []models.AppointmentRequest
}

func (f *fakeClinic) ListServices(ctx context.Context) ([]models.Service, error) {
	return f.services, f.servicesErr
}

func (f *fakeClinic) ListActiveClinicians(ctx context.Context) ([]models.StaffMember, error) {
	return f.staff, f.staffErr
}

func (f *fakeClinic) GetWorkDayNames(ctx context.Context, providerID int) ([]string, error) {
	return f.workDayNames, nil
}

func (f *fakeClinic) GetDayAvailability(ctx context.Context, providerID int, date string) ([]clinicapi.ScheduleWindow, error) {
	f.availabilityFetches = append(f.availabilityFetches, date)
	return f.windows[date], nil
}

func (f *fakeClinic) LookupPatient(ctx context.Context, email string) (*models.PatientLookupResult, error) {
	if result, ok := f.lookup[email]; ok {
		return result, nil
	}
	return &models.PatientLookupResult{Exists: false}, nil
}

func (f *fakeClinic) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.AppointmentResult, error) {
	f.createRequests = append(f.createRequests, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

// newFakeClinic returns a clinic with one service, one active clinician
// working Mon/Wed/Fri, and one schedule window on Wednesday 2026-09-23.
func newFakeClinic() *fakeClinic {
	return &fakeClinic{
		services: []models.Service{
			{ID: 3, Title: "Limpieza dental", Description: "Profilaxis", Category: "Preventiva", Price: 350},
			{ID: 5, Title: "Ortodoncia", Description: "Tratamiento de brackets", Category: "Correctiva", Price: 1200},
		},
		staff: []models.StaffMember{
			{ID: 12, Name: "Carol", PaternalSurname: "Domínguez", Role: "Odontólogo"},
		},
		workDayNames: []string{"Lunes", "Miércoles", "Viernes"},
		windows: map[string][]clinicapi.ScheduleWindow{
			"2026-09-23": {
				{ScheduleID: 7, Duration: 30, Slots: map[string]bool{"10:00": true, "10:30": false}},
			},
		},
		lookup:       map[string]*models.PatientLookupResult{},
		createResult: &models.AppointmentResult{IsTreatment: false, CitaID: 42},
	}
}

// testClock pins "today" to Wednesday 2026-09-16.
var testClock = schedule.FixedClock{At: time.Date(2026, time.September, 16, 8, 0, 0, 0, time.UTC)}

func newTestWizard(t *testing.T, clinic *fakeClinic) *DefaultBookingWizardService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &DefaultBookingWizardService{
		Clinic:   clinic,
		Sessions: NewRedisSessionStore(client, 30*time.Minute),
		Clock:    testClock,
	}
}

func validIdentityInput() models.IdentityInput {
	return models.IdentityInput{
		Name:            "Ana",
		PaternalSurname: "García",
		Gender:          "Femenino",
		BirthDate:       "1990-05-04",
		OriginPlace:     "Hidalgo",
		Email:           "ana@example.com",
		Phone:           "5551234567",
		ServiceID:       3,
		TermsAccepted:   true,
		CaptchaToken:    "tok-123",
	}
}

// driveToAvailability walks a fresh session through identification and
// provider assignment.
func driveToAvailability(t *testing.T, svc *DefaultBookingWizardService) string {
	t.Helper()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitIdentity(ctx, session.SessionID, validIdentityInput())
	require.NoError(t, err)

	_, err = svc.AssignProvider(ctx, session.SessionID)
	require.NoError(t, err)

	return session.SessionID
}

// driveToConfirmation additionally selects the Wednesday 10:00 slot.
func driveToConfirmation(t *testing.T, svc *DefaultBookingWizardService) string {
	t.Helper()
	ctx := context.Background()
	sessionID := driveToAvailability(t, svc)

	_, err := svc.SelectDate(ctx, sessionID, models.DateSelectionInput{Date: "2026-09-23"})
	require.NoError(t, err)

	_, err = svc.SelectSlot(ctx, sessionID, models.SlotSelectionInput{
		Date: "2026-09-23", Time: "10:00", ScheduleID: 7,
	})
	require.NoError(t, err)

	return sessionID
}
