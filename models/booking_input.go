package models

// IdentityInput is the identification step payload.
type IdentityInput struct {
	Name            string `json:"name"`
	PaternalSurname string `json:"paternalSurname"`
	MaternalSurname string `json:"maternalSurname"`
	Gender          string `json:"gender"`
	BirthDate       string `json:"birthDate"` // YYYY-MM-DD
	OriginPlace     string `json:"originPlace"`
	OriginOther     string `json:"originOther"`

	Email   string `json:"email"`
	NoEmail bool   `json:"noEmail"`
	Phone   string `json:"phone"`
	NoPhone bool   `json:"noPhone"`

	ServiceID int `json:"serviceId"`

	TermsAccepted bool   `json:"termsAccepted"`
	CaptchaToken  string `json:"captchaToken"`
}

// DateSelectionInput is the availability step's date pick.
type DateSelectionInput struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// SlotSelectionInput is the availability step's slot pick. ScheduleID is
// required because a time label alone does not identify a reservable unit.
type SlotSelectionInput struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	ScheduleID int    `json:"scheduleId" binding:"required"`
}
