package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"odontocarol/clinicapi"
	"odontocarol/models"
	"odontocarol/services/wizard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWizard returns canned results per method.
type stubWizard struct {
	session      *models.BookingSession
	outcome      *wizard.IdentityOutcome
	day          *models.DayAvailability
	grid         *models.CalendarMonth
	confirmation *models.BookingConfirmation
	services     []models.Service
	lookup       *models.PatientLookupResult
	err          error
}

func (s *stubWizard) StartSession(ctx context.Context) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) Retreat(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) CancelSession(ctx context.Context, sessionID string) error {
	return s.err
}

func (s *stubWizard) GetServices(ctx context.Context) ([]models.Service, error) {
	return s.services, s.err
}

func (s *stubWizard) LookupPatient(ctx context.Context, sessionID, email string) (*models.PatientLookupResult, *models.BookingSession, error) {
	return s.lookup, s.session, s.err
}

func (s *stubWizard) SubmitIdentity(ctx context.Context, sessionID string, input models.IdentityInput) (*wizard.IdentityOutcome, error) {
	return s.outcome, s.err
}

func (s *stubWizard) AssignProvider(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) MonthGrid(ctx context.Context, sessionID string, year int, month time.Month) (*models.CalendarMonth, error) {
	return s.grid, s.err
}

func (s *stubWizard) SelectDate(ctx context.Context, sessionID string, input models.DateSelectionInput) (*models.DayAvailability, error) {
	return s.day, s.err
}

func (s *stubWizard) SelectSlot(ctx context.Context, sessionID string, input models.SlotSelectionInput) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubWizard) Confirm(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	return s.confirmation, s.err
}

func newTestRouter(stub *stubWizard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(stub)
	r.POST("/api/booking/session", h.StartSession)
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.PUT("/api/booking/session/:sessionID/identity", h.SubmitIdentity)
	r.GET("/api/booking/session/:sessionID/calendar", h.MonthGrid)
	r.POST("/api/booking/session/:sessionID/confirm", h.Confirm)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartSession_Returns201(t *testing.T) {
	session := models.NewBookingSession("abc-123", time.Now())
	r := newTestRouter(&stubWizard{session: session})

	w := doRequest(t, r, http.MethodPost, "/api/booking/session", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Session models.BookingSession `json:"session"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc-123", resp.Session.SessionID)
	assert.Equal(t, models.StepIdentification, resp.Session.ActiveStep)
}

func TestGetSession_UnknownIs404(t *testing.T) {
	r := newTestRouter(&stubWizard{err: &wizard.FlowError{Code: wizard.CodeSessionNotFound, Message: "gone"}})

	w := doRequest(t, r, http.MethodGet, "/api/booking/session/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitIdentity_ValidationIs422WithFields(t *testing.T) {
	r := newTestRouter(&stubWizard{err: &wizard.ValidationError{
		Fields: map[string]string{"email": "Correo electrónico inválido"},
	}})

	w := doRequest(t, r, http.MethodPut, "/api/booking/session/abc/identity", `{"name":"Ana"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Correo electrónico inválido", resp.Fields["email"])
}

func TestSubmitIdentity_WarningSurfaces(t *testing.T) {
	session := models.NewBookingSession("abc", time.Now())
	r := newTestRouter(&stubWizard{outcome: &wizard.IdentityOutcome{
		Session: session,
		Warning: "sin medio de contacto",
	}})

	w := doRequest(t, r, http.MethodPut, "/api/booking/session/abc/identity", `{"name":"Ana"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sin medio de contacto")
}

func TestMonthGrid_RejectsBadQuery(t *testing.T) {
	r := newTestRouter(&stubWizard{grid: &models.CalendarMonth{}})

	w := doRequest(t, r, http.MethodGet, "/api/booking/session/abc/calendar?year=2026&month=13", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/booking/session/abc/calendar?month=9", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirm_SlotTakenIs409(t *testing.T) {
	r := newTestRouter(&stubWizard{err: &wizard.FlowError{Code: wizard.CodeSlotTaken, Message: "ocupado"}})

	w := doRequest(t, r, http.MethodPost, "/api/booking/session/abc/confirm", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirm_BackendFailureIs502WithMessage(t *testing.T) {
	r := newTestRouter(&stubWizard{err: &clinicapi.APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "backend caído",
	}})

	w := doRequest(t, r, http.MethodPost, "/api/booking/session/abc/confirm", "")
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "backend caído")
}

func TestConfirm_Returns201WithConfirmation(t *testing.T) {
	r := newTestRouter(&stubWizard{confirmation: &models.BookingConfirmation{
		Kind:    models.ConfirmationAppointment,
		Message: "agendada",
		CitaID:  42,
	}})

	w := doRequest(t, r, http.MethodPost, "/api/booking/session/abc/confirm", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"citaId":42`)
}
