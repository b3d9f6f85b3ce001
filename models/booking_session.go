package models

import "time"

// BookingSession holds the wizard state between steps. It is serialized to
// JSON and cached in Redis for the lifetime of the booking attempt; an
// expired session never resumes (stale availability must not survive).
type BookingSession struct {
	SessionID      string              `json:"sessionId"`
	ActiveStep     WizardStep          `json:"activeStep"`
	Draft          BookingDraft        `json:"draft"`
	StepsCompleted map[WizardStep]bool `json:"stepsCompleted"`

	// WorkDays is cached for the lifetime of the availability step.
	WorkDays WorkDaySet `json:"workDays,omitempty"`

	// LastAvailability is the most recent day snapshot, kept only so a slot
	// selection can be checked against what the patient was actually shown.
	// It is replaced wholesale on every date selection.
	LastAvailability *DayAvailability `json:"lastAvailability,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewBookingSession returns an empty session positioned at the first step.
func NewBookingSession(sessionID string, now time.Time) *BookingSession {
	return &BookingSession{
		SessionID:      sessionID,
		ActiveStep:     FirstStep(),
		StepsCompleted: make(map[WizardStep]bool),
		CreatedAt:      now,
	}
}

// CompleteStep merges the patch, marks the step completed, and advances the
// wizard. This is the only path to forward progress.
func (s *BookingSession) CompleteStep(step WizardStep, patch DraftPatch) {
	patch.Apply(&s.Draft)
	if s.StepsCompleted == nil {
		s.StepsCompleted = make(map[WizardStep]bool)
	}
	s.StepsCompleted[step] = true
	s.ActiveStep = s.ActiveStep.Next()
}

// Retreat moves the wizard one step back, leaving the draft untouched.
func (s *BookingSession) Retreat() {
	s.ActiveStep = s.ActiveStep.Prev()
}
