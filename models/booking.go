package models

// StatusPending is the initial status of every submitted booking.
const StatusPending = "Pendiente"

// AppointmentRequest is the merged payload posted to the backend at
// /citas/nueva. Field names follow the backend's wire contract.
type AppointmentRequest struct {
	PatientID       *int    `json:"paciente_id,omitempty"`
	Name            string  `json:"nombre"`
	PaternalSurname string  `json:"apellido_paterno"`
	MaternalSurname string  `json:"apellido_materno"`
	Gender          string  `json:"genero"`
	BirthDate       string  `json:"fecha_nacimiento"`
	OriginPlace     string  `json:"lugar"`
	Email           string  `json:"correo"`
	Phone           string  `json:"telefono"`
	ProviderID      int     `json:"odontologo_id"`
	ProviderName    string  `json:"odontologo_nombre"`
	ServiceID       int     `json:"servicio_id"`
	ServiceTitle    string  `json:"servicio_nombre"`
	ServiceCategory string  `json:"categoria_servicio"`
	ServicePrice    float64 `json:"precio_servicio"`
	DateTime        string  `json:"fecha_hora"` // "YYYY-MM-DD HH:MM"
	Status          string  `json:"estado"`
}

// AppointmentResult is the backend's 201 response to /citas/nueva.
type AppointmentResult struct {
	IsTreatment bool `json:"es_tratamiento"`
	CitaID      int  `json:"cita_id"`
	TreatmentID int  `json:"tratamiento_id,omitempty"`
}

// Confirmation kinds.
const (
	ConfirmationAppointment = "appointment"
	ConfirmationTreatment   = "treatment"
)

// BookingConfirmation carries enough context for a confirmation view to
// render without re-fetching anything.
type BookingConfirmation struct {
	Kind         string `json:"kind"` // appointment | treatment
	Message      string `json:"message"`
	CitaID       int    `json:"citaId,omitempty"`
	TreatmentID  int    `json:"treatmentId,omitempty"`
	ServiceTitle string `json:"serviceTitle"`
	ProviderName string `json:"providerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	NoEmail      bool   `json:"noEmail"`
	NoPhone      bool   `json:"noPhone"`
}

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	CitaID       int    `json:"citaId"`
	PatientName  string `json:"patientName"`
	ServiceTitle string `json:"serviceTitle"`
	ProviderName string `json:"providerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}
