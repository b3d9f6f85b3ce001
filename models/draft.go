package models

// BookingDraft is the single accumulating record of all booking data gathered
// across wizard steps. It is owned by the session service and only ever
// modified through DraftPatch merges.
type BookingDraft struct {
	// Identity.
	Name            string `json:"name"`
	PaternalSurname string `json:"paternalSurname"`
	MaternalSurname string `json:"maternalSurname"`
	Gender          string `json:"gender"`
	BirthDate       string `json:"birthDate"` // YYYY-MM-DD
	OriginPlace     string `json:"originPlace"`
	OriginOther     string `json:"originOther,omitempty"`

	// Contact. An empty channel with its omission flag set means the patient
	// explicitly declined to provide it.
	Email   string `json:"email,omitempty"`
	NoEmail bool   `json:"noEmail"`
	Phone   string `json:"phone,omitempty"`
	NoPhone bool   `json:"noPhone"`

	// Service selection. Category and price are denormalized copies frozen at
	// selection time; the submitter re-resolves them against the live catalog.
	ServiceID       int     `json:"serviceId,omitempty"`
	ServiceTitle    string  `json:"serviceTitle,omitempty"`
	ServiceCategory string  `json:"serviceCategory,omitempty"`
	ServicePrice    float64 `json:"servicePrice,omitempty"`

	// Provider assignment.
	ProviderID   int    `json:"providerId,omitempty"`
	ProviderName string `json:"providerName,omitempty"`

	// Schedule selection. ScheduleID is the authoritative identity of the
	// reservable unit; date+time alone are display values.
	Date       string `json:"date,omitempty"` // YYYY-MM-DD, noon-normalized at selection
	Time       string `json:"time,omitempty"` // HH:MM
	ScheduleID int    `json:"scheduleId,omitempty"`

	// Linkage to an existing patient record matched by email lookup.
	ExistingPatientID *int `json:"existingPatientId,omitempty"`
}

// DraftPatch is a partial BookingDraft. Nil fields are left untouched by
// Apply; set fields overwrite, last write wins.
type DraftPatch struct {
	Name            *string `json:"name,omitempty"`
	PaternalSurname *string `json:"paternalSurname,omitempty"`
	MaternalSurname *string `json:"maternalSurname,omitempty"`
	Gender          *string `json:"gender,omitempty"`
	BirthDate       *string `json:"birthDate,omitempty"`
	OriginPlace     *string `json:"originPlace,omitempty"`
	OriginOther     *string `json:"originOther,omitempty"`

	Email   *string `json:"email,omitempty"`
	NoEmail *bool   `json:"noEmail,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	NoPhone *bool   `json:"noPhone,omitempty"`

	ServiceID       *int     `json:"serviceId,omitempty"`
	ServiceTitle    *string  `json:"serviceTitle,omitempty"`
	ServiceCategory *string  `json:"serviceCategory,omitempty"`
	ServicePrice    *float64 `json:"servicePrice,omitempty"`

	ProviderID   *int    `json:"providerId,omitempty"`
	ProviderName *string `json:"providerName,omitempty"`

	Date       *string `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
	ScheduleID *int    `json:"scheduleId,omitempty"`

	ExistingPatientID **int `json:"-"`
}

// Apply shallow-merges the patch into the draft.
func (p DraftPatch) Apply(d *BookingDraft) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.PaternalSurname != nil {
		d.PaternalSurname = *p.PaternalSurname
	}
	if p.MaternalSurname != nil {
		d.MaternalSurname = *p.MaternalSurname
	}
	if p.Gender != nil {
		d.Gender = *p.Gender
	}
	if p.BirthDate != nil {
		d.BirthDate = *p.BirthDate
	}
	if p.OriginPlace != nil {
		d.OriginPlace = *p.OriginPlace
	}
	if p.OriginOther != nil {
		d.OriginOther = *p.OriginOther
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.NoEmail != nil {
		d.NoEmail = *p.NoEmail
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.NoPhone != nil {
		d.NoPhone = *p.NoPhone
	}
	if p.ServiceID != nil {
		d.ServiceID = *p.ServiceID
	}
	if p.ServiceTitle != nil {
		d.ServiceTitle = *p.ServiceTitle
	}
	if p.ServiceCategory != nil {
		d.ServiceCategory = *p.ServiceCategory
	}
	if p.ServicePrice != nil {
		d.ServicePrice = *p.ServicePrice
	}
	if p.ProviderID != nil {
		d.ProviderID = *p.ProviderID
	}
	if p.ProviderName != nil {
		d.ProviderName = *p.ProviderName
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Time != nil {
		d.Time = *p.Time
	}
	if p.ScheduleID != nil {
		d.ScheduleID = *p.ScheduleID
	}
	if p.ExistingPatientID != nil {
		d.ExistingPatientID = *p.ExistingPatientID
	}
}
