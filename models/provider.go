package models

import "strings"

// ClinicianRole is the staff role the booking flow assigns appointments to.
const ClinicianRole = "Odontólogo"

// StaffMember is one entry of the backend's active staff listing.
type StaffMember struct {
	ID              int    `json:"id"`
	Name            string `json:"nombre"`
	PaternalSurname string `json:"apellido_paterno"`
	MaternalSurname string `json:"apellido_materno"`
	Role            string `json:"puesto"`
}

// DisplayName returns the staff member's full name for patient-facing views.
func (m StaffMember) DisplayName() string {
	parts := []string{m.Name, m.PaternalSurname, m.MaternalSurname}
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			joined = append(joined, strings.TrimSpace(p))
		}
	}
	return strings.Join(joined, " ")
}

// IsClinician reports whether the staff member can take bookings.
func (m StaffMember) IsClinician() bool {
	return strings.EqualFold(m.Role, ClinicianRole) || strings.EqualFold(m.Role, "Odontologo")
}
