package models

// WizardStep identifies a stage of the booking wizard by name.
type WizardStep string

const (
	StepIdentification     WizardStep = "identification"
	StepProviderAssignment WizardStep = "provider_assignment"
	StepAvailability       WizardStep = "availability"
	StepConfirmation       WizardStep = "confirmation"
)

// stepOrder fixes the forward sequence of the wizard.
var stepOrder = []WizardStep{
	StepIdentification,
	StepProviderAssignment,
	StepAvailability,
	StepConfirmation,
}

// Valid reports whether s names a known wizard step.
func (s WizardStep) Valid() bool {
	return s.index() >= 0
}

func (s WizardStep) index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the step after s. Advancing past the terminal step is a no-op.
func (s WizardStep) Next() WizardStep {
	i := s.index()
	if i < 0 || i >= len(stepOrder)-1 {
		return s
	}
	return stepOrder[i+1]
}

// Prev returns the step before s, floored at the first step.
func (s WizardStep) Prev() WizardStep {
	i := s.index()
	if i <= 0 {
		return stepOrder[0]
	}
	return stepOrder[i-1]
}

// FirstStep returns the initial wizard step.
func FirstStep() WizardStep {
	return stepOrder[0]
}
