package wizard

import (
	"context"
	"time"

	"odontocarol/models"
	"odontocarol/services/schedule"
	"odontocarol/utils"

	"go.uber.org/zap"
)

// MonthGrid builds the displayed month's week grid with per-day disabled
// flags computed from the provider's work days and the injected clock.
func (s *DefaultBookingWizardService) MonthGrid(ctx context.Context, sessionID string, year int, month time.Month) (*models.CalendarMonth, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, models.StepAvailability); err != nil {
		return nil, err
	}

	grid := schedule.BuildMonthGrid(year, month, session.WorkDays, s.clock())
	return &grid, nil
}

// SelectDate handles a date click: it validates eligibility, clears any
// previously chosen slot from the draft, and fetches the day's availability
// from the backend. The fetch happens on every selection — including
// re-opening the same date — because another booking may have consumed a
// slot in the interim.
func (s *DefaultBookingWizardService) SelectDate(ctx context.Context, sessionID string, input models.DateSelectionInput) (*models.DayAvailability, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, models.StepAvailability); err != nil {
		return nil, err
	}

	date, err := schedule.ParseDate(input.Date)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"date": "Fecha inválida"}}
	}
	if schedule.IsDateDisabled(date, session.WorkDays, s.clock()) {
		return nil, newFlowError(CodeDateDisabled, "la fecha seleccionada no está disponible")
	}

	// No stale slot survives a date change.
	clearTime, clearSchedule := "", 0
	patch := models.DraftPatch{
		Date:       ptr(schedule.FormatDate(date)),
		Time:       &clearTime,
		ScheduleID: &clearSchedule,
	}
	patch.Apply(&session.Draft)

	windows, err := s.Clinic.GetDayAvailability(ctx, session.Draft.ProviderID, schedule.FormatDate(date))
	if err != nil {
		return nil, err
	}
	day := schedule.PartitionDay(schedule.FormatDate(date), windows)
	session.LastAvailability = &day

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	utils.GetLogger().Debug("availability fetched",
		zap.String("sessionId", sessionID),
		zap.String("date", day.Date),
		zap.Int("available", len(day.Available)),
		zap.Int("booked", len(day.Booked)))
	return &day, nil
}

// SelectSlot commits a chosen slot into the draft and completes the
// availability step. The slot must exist in the availability snapshot the
// patient was just shown, matched by time label AND schedule id; the step
// cannot complete unless date, time, and schedule id are all present.
func (s *DefaultBookingWizardService) SelectSlot(ctx context.Context, sessionID string, input models.SlotSelectionInput) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, models.StepAvailability); err != nil {
		return nil, err
	}

	if session.LastAvailability == nil || session.LastAvailability.Date != input.Date {
		return nil, newFlowError(CodeSlotUnavailable, "selecciona primero una fecha para ver sus horarios")
	}

	slot, ok := schedule.FindSlot(*session.LastAvailability, input.Time, input.ScheduleID)
	if !ok {
		return nil, newFlowError(CodeSlotUnavailable, "el horario seleccionado ya no está disponible")
	}

	patch := models.DraftPatch{
		Date:       ptr(input.Date),
		Time:       ptr(slot.Time),
		ScheduleID: ptr(slot.ScheduleID),
	}
	session.CompleteStep(models.StepAvailability, patch)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
