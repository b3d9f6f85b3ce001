package clinicapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"odontocarol/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListServices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servicios/all", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 3, "title": "Limpieza dental", "description": "Profilaxis", "category": "Preventiva", "price": 350.0},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0, nil)
	services, err := c.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, 3, services[0].ID)
	assert.Equal(t, "Limpieza dental", services[0].Title)
	assert.Equal(t, 350.0, services[0].Price)
}

func TestGetWorkDayNames_QueryParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/horarios/dias_laborales", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("odontologo_id"))
		_ = json.NewEncoder(w).Encode([]string{"Lunes", "Miércoles", "Viernes"})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0, nil)
	names, err := c.GetWorkDayNames(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lunes", "Miércoles", "Viernes"}, names)
}

func TestGetDayAvailability(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/horarios/disponibilidad", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("odontologo_id"))
		assert.Equal(t, "2026-09-16", r.URL.Query().Get("fecha"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"horario_id": 7, "duracion": 30, "slots_disponibles": map[string]bool{"09:00": true, "09:30": false}},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0, nil)
	windows, err := c.GetDayAvailability(context.Background(), 12, "2026-09-16")
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 7, windows[0].ScheduleID)
	assert.Equal(t, 30, windows[0].Duration)
	assert.True(t, windows[0].Slots["09:00"])
	assert.False(t, windows[0].Slots["09:30"])
}

func TestLookupPatient_Hit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pacientes/exists", r.URL.Path)
		assert.Equal(t, "ana@example.com", r.URL.Query().Get("email"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"exists": true,
			"data": map[string]any{
				"id": 55, "nombre": "Ana", "apellido_paterno": "García",
				"correo": "ana@example.com", "telefono": "5551234567",
			},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0, nil)
	result, err := c.LookupPatient(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.True(t, result.Exists)
	require.NotNil(t, result.Data)
	assert.Equal(t, 55, result.Data.ID)
	assert.Equal(t, "Ana", result.Data.Name)
}

func TestCreateAppointment_Created(t *testing.T) {
	var got models.AppointmentRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/citas/nueva", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"es_tratamiento": false, "cita_id": 42})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0, nil)
	result, err := c.CreateAppointment(context.Background(), models.AppointmentRequest{
		Name:         "Ana",
		ProviderID:   12,
		ServiceTitle: "Limpieza dental",
		DateTime:     "2026-09-16 10:00",
		Status:       models.StatusPending,
	})
	require.NoError(t, err)
	assert.False(t, result.IsTreatment)
	assert.Equal(t, 42, result.CitaID)
	assert.Equal(t, "Pendiente", got.Status)
	assert.Equal(t, "2026-09-16 10:00", got.DateTime)
}

func TestCreateAppointment_ConflictIsDistinct(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "El horario ya no está disponible"})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0, nil)
	_, err := c.CreateAppointment(context.Background(), models.AppointmentRequest{})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), "El horario ya no está disponible")
}

func TestServerMessagePreserved(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "backend en mantenimiento"})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 0, nil)
	_, err := c.ListServices(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend en mantenimiento")
	assert.False(t, IsConflict(err))
}
