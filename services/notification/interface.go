package notification

import (
	"context"
	"fmt"

	"odontocarol/models"
	"odontocarol/utils"

	"go.uber.org/zap"
)

// NotificationService delivers appointment reminders to patients over
// whichever contact channels the booking captured.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService logs reminders through the structured logger.
// Email/SMS delivery plugs in behind the same interface once the clinic
// settles on a provider.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

func (s *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	if payload.Email == "" && payload.Phone == "" {
		// The patient opted out of both channels at booking time.
		utils.GetLogger().Info("reminder skipped, no contact channel",
			zap.Int("citaId", payload.CitaID))
		return nil
	}

	body := fmt.Sprintf("Hola %s, te recordamos tu cita de %s con %s el %s a las %s.",
		payload.PatientName, payload.ServiceTitle, payload.ProviderName, payload.Date, payload.Time)

	utils.GetLogger().Info("appointment reminder dispatched",
		zap.Int("citaId", payload.CitaID),
		zap.String("email", payload.Email),
		zap.String("phone", payload.Phone),
		zap.String("body", body))
	return nil
}
