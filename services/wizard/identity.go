package wizard

import (
	"context"
	"regexp"
	"strings"
	"time"

	"odontocarol/models"
	"odontocarol/utils"

	"go.uber.org/zap"
)

// OriginOther unlocks the free-text origin field.
const OriginOther = "Otro"

const bothChannelsOmittedWarning = "No se proporcionó ningún medio de contacto; la clínica no podrá confirmar la cita."

var (
	namePattern  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ ]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// SubmitIdentity validates the identification step, freezes the selected
// service into the draft, and advances the wizard. Contact omission is a soft
// condition: it surfaces a warning but never blocks completion.
func (s *DefaultBookingWizardService) SubmitIdentity(ctx context.Context, sessionID string, input models.IdentityInput) (*IdentityOutcome, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, models.StepIdentification); err != nil {
		return nil, err
	}

	fields := validateIdentity(input)

	// Service selection must reference the fetched catalog; category and
	// price are copied out of it and frozen into the draft.
	var service *models.Service
	if input.ServiceID == 0 {
		fields["serviceId"] = "Selecciona un servicio"
	} else {
		services, err := s.Clinic.ListServices(ctx)
		if err != nil {
			return nil, err
		}
		for i := range services {
			if services[i].ID == input.ServiceID {
				service = &services[i]
				break
			}
		}
		if service == nil {
			fields["serviceId"] = "El servicio seleccionado no existe"
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// A changed email invalidates a previous lookup match; the linkage must
	// not outlive the address it was matched on.
	existing := session.Draft.ExistingPatientID
	if existing != nil && !strings.EqualFold(session.Draft.Email, input.Email) {
		existing = nil
	}

	originOther := ""
	if input.OriginPlace == OriginOther {
		originOther = strings.TrimSpace(input.OriginOther)
	}

	patch := models.DraftPatch{
		Name:            ptr(strings.TrimSpace(input.Name)),
		PaternalSurname: ptr(strings.TrimSpace(input.PaternalSurname)),
		MaternalSurname: ptr(strings.TrimSpace(input.MaternalSurname)),
		Gender:          ptr(input.Gender),
		BirthDate:       ptr(input.BirthDate),
		OriginPlace:     ptr(input.OriginPlace),
		OriginOther:     ptr(originOther),
		Email:           ptr(strings.TrimSpace(input.Email)),
		NoEmail:         ptr(input.NoEmail),
		Phone:           ptr(strings.TrimSpace(input.Phone)),
		NoPhone:         ptr(input.NoPhone),
		ServiceID:       ptr(service.ID),
		ServiceTitle:    ptr(service.Title),
		ServiceCategory: ptr(service.Category),
		ServicePrice:    ptr(service.Price),
	}
	patch.ExistingPatientID = &existing

	session.CompleteStep(models.StepIdentification, patch)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	outcome := &IdentityOutcome{Session: session}
	if contactOmitted(input) {
		outcome.Warning = bothChannelsOmittedWarning
	}
	return outcome, nil
}

// LookupPatient matches the typed email against stored patient records. On a
// hit the stored identity and contact fields are frozen into the draft and
// the existing-patient id recorded; on a miss the id is cleared and fields
// stay editable. Triggered explicitly by the patient, never per keystroke.
func (s *DefaultBookingWizardService) LookupPatient(ctx context.Context, sessionID, email string) (*models.PatientLookupResult, *models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if err := requireStep(session, models.StepIdentification); err != nil {
		return nil, nil, err
	}
	if !emailPattern.MatchString(email) {
		return nil, nil, &ValidationError{Fields: map[string]string{"email": "Correo electrónico inválido"}}
	}

	result, err := s.Clinic.LookupPatient(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	var patch models.DraftPatch
	if result.Exists && result.Data != nil {
		p := result.Data
		id := p.ID
		idPtr := &id
		patch = models.DraftPatch{
			Name:            ptr(p.Name),
			PaternalSurname: ptr(p.PaternalSurname),
			MaternalSurname: ptr(p.MaternalSurname),
			Gender:          ptr(p.Gender),
			BirthDate:       ptr(p.BirthDate),
			OriginPlace:     ptr(p.OriginPlace),
			Email:           ptr(p.Email),
			NoEmail:         ptr(false),
			Phone:           ptr(p.Phone),
		}
		patch.ExistingPatientID = &idPtr
		utils.GetLogger().Info("patient lookup matched",
			zap.String("sessionId", sessionID), zap.Int("patientId", p.ID))
	} else {
		var cleared *int
		patch = models.DraftPatch{Email: ptr(email)}
		patch.ExistingPatientID = &cleared
	}

	patch.Apply(&session.Draft)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return result, session, nil
}

func validateIdentity(input models.IdentityInput) map[string]string {
	fields := make(map[string]string)

	checkName := func(field, value string, required bool) {
		value = strings.TrimSpace(value)
		if value == "" {
			if required {
				fields[field] = "Este campo es obligatorio"
			}
			return
		}
		if !namePattern.MatchString(value) {
			fields[field] = "Solo se permiten letras y acentos"
		}
	}

	checkName("name", input.Name, true)
	checkName("paternalSurname", input.PaternalSurname, true)
	checkName("maternalSurname", input.MaternalSurname, false)

	if input.Gender == "" {
		fields["gender"] = "Selecciona un género"
	}

	if input.BirthDate == "" {
		fields["birthDate"] = "La fecha de nacimiento es obligatoria"
	} else if _, err := time.Parse("2006-01-02", input.BirthDate); err != nil {
		fields["birthDate"] = "Fecha de nacimiento inválida"
	}

	if input.OriginPlace == "" {
		fields["originPlace"] = "Selecciona un lugar de origen"
	} else if input.OriginPlace == OriginOther && strings.TrimSpace(input.OriginOther) == "" {
		fields["originOther"] = "Especifica el lugar de origen"
	}

	if email := strings.TrimSpace(input.Email); email != "" && !emailPattern.MatchString(email) {
		fields["email"] = "Correo electrónico inválido"
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" && !phonePattern.MatchString(phone) {
		fields["phone"] = "El teléfono debe tener 10 dígitos"
	}

	if !input.TermsAccepted {
		fields["termsAccepted"] = "Debes aceptar los términos y condiciones"
	}
	if strings.TrimSpace(input.CaptchaToken) == "" {
		fields["captchaToken"] = "Completa la verificación de seguridad"
	}

	return fields
}

// contactOmitted reports whether both channels are effectively absent, either
// explicitly declined or left empty.
func contactOmitted(input models.IdentityInput) bool {
	emailMissing := input.NoEmail || strings.TrimSpace(input.Email) == ""
	phoneMissing := input.NoPhone || strings.TrimSpace(input.Phone) == ""
	return emailMissing && phoneMissing
}

func ptr[T any](v T) *T {
	return &v
}
