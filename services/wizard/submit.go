package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"odontocarol/clinicapi"
	"odontocarol/models"
	"odontocarol/utils"

	"go.uber.org/zap"
)

const (
	appointmentBookedMessage  = "Tu cita ha sido agendada correctamente."
	treatmentRequestedMessage = "Tu tratamiento ha sido solicitado y está pendiente de aprobación del odontólogo."
	combinedDateTimeLayout    = "2006-01-02 15:04"
	defaultReminderLeadHours  = 24
)

// Confirm validates draft completeness, re-resolves service metadata against
// the live catalog, submits the booking, and branches the outcome on the
// backend's treatment flag. The session is discarded on success.
func (s *DefaultBookingWizardService) Confirm(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, models.StepConfirmation); err != nil {
		return nil, err
	}
	draft := session.Draft

	// No partial submission is ever sent.
	if draft.Name == "" || draft.PaternalSurname == "" || draft.Date == "" || draft.Time == "" {
		return nil, newFlowError(CodeIncompleteDraft, "faltan datos obligatorios para agendar la cita")
	}

	// The draft only carries a denormalized title/id; the catalog is the
	// authoritative place category and price are finalized.
	category, price := draft.ServiceCategory, draft.ServicePrice
	if services, err := s.Clinic.ListServices(ctx); err == nil {
		for _, svc := range services {
			if strings.EqualFold(svc.Title, draft.ServiceTitle) {
				category, price = svc.Category, svc.Price
				break
			}
		}
	} else {
		utils.GetLogger().Warn("service re-resolution failed, using frozen metadata", zap.Error(err))
	}

	email, phone := draft.Email, draft.Phone
	if draft.NoEmail {
		email = ""
	}
	if draft.NoPhone {
		phone = ""
	}

	req := models.AppointmentRequest{
		PatientID:       draft.ExistingPatientID,
		Name:            draft.Name,
		PaternalSurname: draft.PaternalSurname,
		MaternalSurname: draft.MaternalSurname,
		Gender:          draft.Gender,
		BirthDate:       draft.BirthDate,
		OriginPlace:     originPlace(draft),
		Email:           email,
		Phone:           phone,
		ProviderID:      draft.ProviderID,
		ProviderName:    draft.ProviderName,
		ServiceID:       draft.ServiceID,
		ServiceTitle:    draft.ServiceTitle,
		ServiceCategory: category,
		ServicePrice:    price,
		DateTime:        fmt.Sprintf("%s %s", draft.Date, draft.Time),
		Status:          models.StatusPending,
	}

	result, err := s.Clinic.CreateAppointment(ctx, req)
	if err != nil {
		if clinicapi.IsConflict(err) {
			// The slot was consumed between selection and submission. The
			// client should re-open the slot picker with fresh availability.
			return nil, newFlowError(CodeSlotTaken, "el horario fue ocupado por otra reserva; elige otro horario")
		}
		return nil, err
	}

	confirmation := &models.BookingConfirmation{
		CitaID:       result.CitaID,
		TreatmentID:  result.TreatmentID,
		ServiceTitle: draft.ServiceTitle,
		ProviderName: draft.ProviderName,
		Date:         draft.Date,
		Time:         draft.Time,
		NoEmail:      draft.NoEmail,
		NoPhone:      draft.NoPhone,
	}
	if result.IsTreatment {
		confirmation.Kind = models.ConfirmationTreatment
		confirmation.Message = treatmentRequestedMessage
	} else {
		confirmation.Kind = models.ConfirmationAppointment
		confirmation.Message = appointmentBookedMessage
	}

	s.scheduleReminder(ctx, draft, result)

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard completed session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	return confirmation, nil
}

// scheduleReminder enqueues a patient reminder ahead of the appointment.
// Failure to enqueue never fails the booking.
func (s *DefaultBookingWizardService) scheduleReminder(ctx context.Context, draft models.BookingDraft, result *models.AppointmentResult) {
	if s.Reminders == nil {
		return
	}

	at, err := time.ParseInLocation(combinedDateTimeLayout, fmt.Sprintf("%s %s", draft.Date, draft.Time), time.UTC)
	if err != nil {
		utils.GetLogger().Warn("unparseable appointment datetime, skipping reminder", zap.Error(err))
		return
	}

	lead := s.ReminderLeadHours
	if lead <= 0 {
		lead = defaultReminderLeadHours
	}
	fireAt := at.Add(-time.Duration(lead) * time.Hour)
	if !fireAt.After(s.now()) {
		return
	}

	payload := models.ReminderPayload{
		CitaID:       result.CitaID,
		PatientName:  strings.TrimSpace(draft.Name + " " + draft.PaternalSurname),
		ServiceTitle: draft.ServiceTitle,
		ProviderName: draft.ProviderName,
		Date:         draft.Date,
		Time:         draft.Time,
		Email:        draft.Email,
		Phone:        draft.Phone,
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.Int("citaId", result.CitaID), zap.Error(err))
	}
}

func originPlace(draft models.BookingDraft) string {
	if draft.OriginPlace == OriginOther && draft.OriginOther != "" {
		return draft.OriginOther
	}
	return draft.OriginPlace
}
