package models

// PatientRecord is the backend's stored patient data returned by the
// email-existence lookup.
type PatientRecord struct {
	ID              int    `json:"id"`
	Name            string `json:"nombre"`
	PaternalSurname string `json:"apellido_paterno"`
	MaternalSurname string `json:"apellido_materno"`
	Gender          string `json:"genero"`
	BirthDate       string `json:"fecha_nacimiento"`
	OriginPlace     string `json:"lugar"`
	Email           string `json:"correo"`
	Phone           string `json:"telefono"`
}

// PatientLookupResult is the outcome of matching an email against stored
// patient records.
type PatientLookupResult struct {
	Exists bool           `json:"exists"`
	Data   *PatientRecord `json:"data,omitempty"`
}
