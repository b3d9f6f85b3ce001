package wizard

import (
	"context"
	"fmt"

	"odontocarol/models"
	"odontocarol/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new booking session positioned at the
// identification step with an empty draft.
func (s *DefaultBookingWizardService) StartSession(ctx context.Context) (*models.BookingSession, error) {
	session := models.NewBookingSession(uuid.New().String(), s.now())
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking session started", zap.String("sessionId", session.SessionID))
	return session, nil
}

// GetSession returns the current session state.
func (s *DefaultBookingWizardService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// Retreat moves the wizard one step back, floored at the first step. The
// draft is untouched; already-entered data survives back-navigation.
func (s *DefaultBookingWizardService) Retreat(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Retreat()
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession discards an abandoned session.
func (s *DefaultBookingWizardService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// GetServices exposes the catalog for the service picker.
func (s *DefaultBookingWizardService) GetServices(ctx context.Context) ([]models.Service, error) {
	return s.Clinic.ListServices(ctx)
}

// requireStep rejects payloads addressed to a step that is not active.
// Forward progress happens only through step completion, never by jumping.
func requireStep(session *models.BookingSession, step models.WizardStep) error {
	if session.ActiveStep != step {
		return newFlowError(CodeStepMismatch,
			fmt.Sprintf("session is at step %q, not %q", session.ActiveStep, step))
	}
	return nil
}
