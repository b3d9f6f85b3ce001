package wizard

import (
	"context"

	"odontocarol/models"
	"odontocarol/services/schedule"
	"odontocarol/utils"

	"go.uber.org/zap"
)

// AssignProvider selects the clinic's active clinician and writes it into
// the draft. No active clinician is a hard stop: a booking cannot exist
// without a provider, so the only way out is back-navigation.
func (s *DefaultBookingWizardService) AssignProvider(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, models.StepProviderAssignment); err != nil {
		return nil, err
	}

	staff, err := s.Clinic.ListActiveClinicians(ctx)
	if err != nil {
		return nil, err
	}

	var assigned *models.StaffMember
	for i := range staff {
		if staff[i].IsClinician() {
			assigned = &staff[i]
			break
		}
	}
	if assigned == nil {
		return nil, newFlowError(CodeNoProvider, "no hay odontólogos disponibles en este momento")
	}

	// Work days are fetched once per provider and cached on the session for
	// the lifetime of the availability step.
	names, err := s.Clinic.GetWorkDayNames(ctx, assigned.ID)
	if err != nil {
		return nil, err
	}
	session.WorkDays = schedule.ParseWorkDays(names)

	patch := models.DraftPatch{
		ProviderID:   ptr(assigned.ID),
		ProviderName: ptr(assigned.DisplayName()),
	}
	session.CompleteStep(models.StepProviderAssignment, patch)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("provider assigned",
		zap.String("sessionId", sessionID),
		zap.Int("providerId", assigned.ID),
		zap.Ints("workDays", []int(session.WorkDays)))
	return session, nil
}
