package clinicapi

// ScheduleWindow is one schedule block of a provider day as served by
// /horarios/disponibilidad. Slots maps "HH:MM" labels to whether the slot is
// still free inside this window.
type ScheduleWindow struct {
	ScheduleID int             `json:"horario_id"`
	Duration   int             `json:"duracion"`
	Slots      map[string]bool `json:"slots_disponibles"`
}

// apiErrorBody is the backend's error envelope.
type apiErrorBody struct {
	Message string `json:"message"`
}
