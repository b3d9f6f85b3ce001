package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"odontocarol/models"
	"odontocarol/utils"

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response from the clinic backend. The server-provided
// message is preserved when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("clinic backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("clinic backend returned %d", e.StatusCode)
}

// IsConflict reports whether err is a backend 409, meaning the selected slot
// was taken by another booking between selection and submission.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// Client is a typed HTTP client for the clinic's REST backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a clinic backend client. A zero timeout falls back to the
// package default.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ListServices fetches the service catalog.
func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.get(ctx, "/servicios/all", nil, &services); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// ListActiveClinicians fetches the backend's active staff listing.
func (c *Client) ListActiveClinicians(ctx context.Context) ([]models.StaffMember, error) {
	var staff []models.StaffMember
	if err := c.get(ctx, "/empleados/odontologos/activos", nil, &staff); err != nil {
		return nil, fmt.Errorf("list active clinicians: %w", err)
	}
	return staff, nil
}

// GetWorkDayNames fetches the provider's working weekdays as localized
// (Spanish) day names.
func (c *Client) GetWorkDayNames(ctx context.Context, providerID int) ([]string, error) {
	q := url.Values{"odontologo_id": {strconv.Itoa(providerID)}}
	var names []string
	if err := c.get(ctx, "/horarios/dias_laborales", q, &names); err != nil {
		return nil, fmt.Errorf("get work days for provider %d: %w", providerID, err)
	}
	return names, nil
}

// GetDayAvailability fetches the live slot map for one provider and date
// (YYYY-MM-DD). It is never cached; callers re-request it on every date
// selection.
func (c *Client) GetDayAvailability(ctx context.Context, providerID int, date string) ([]ScheduleWindow, error) {
	q := url.Values{
		"odontologo_id": {strconv.Itoa(providerID)},
		"fecha":         {date},
	}
	var windows []ScheduleWindow
	if err := c.get(ctx, "/horarios/disponibilidad", q, &windows); err != nil {
		return nil, fmt.Errorf("get availability for provider %d on %s: %w", providerID, date, err)
	}
	return windows, nil
}

// LookupPatient matches an email against stored patient records.
func (c *Client) LookupPatient(ctx context.Context, email string) (*models.PatientLookupResult, error) {
	q := url.Values{"email": {email}}
	var result models.PatientLookupResult
	if err := c.get(ctx, "/pacientes/exists", q, &result); err != nil {
		return nil, fmt.Errorf("patient lookup: %w", err)
	}
	return &result, nil
}

// CreateAppointment submits the merged booking payload. A 409 surfaces as an
// APIError recognizable via IsConflict.
func (c *Client) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.AppointmentResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal appointment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/citas/nueva", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build appointment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit appointment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.readError(resp)
	}

	var result models.AppointmentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode appointment response: %w", err)
	}
	c.logger.Info("appointment created",
		zap.Int("citaId", result.CitaID),
		zap.Bool("isTreatment", result.IsTreatment))
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.readError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) readError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body apiErrorBody
	_ = json.Unmarshal(raw, &body)
	c.logger.Warn("clinic backend error",
		zap.Int("status", resp.StatusCode),
		zap.String("message", body.Message))
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}
