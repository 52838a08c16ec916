package dto

type AddDonationRequestDTO struct {
	SchemeID string  `json:"schemeId" validate:"required" example:"1"`
	Amount   float64 `json:"amount" validate:"required,gt=0" example:"100"`
	Message  string  `json:"message" validate:"max=500" example:"Keep up the good work!"`
}

type DonationResponseDTO struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId" example:"1"`
	SchemeID string  `json:"schemeId" example:"1"`
	Amount   float64 `json:"amount" example:"150"`
	Date     string  `json:"date" example:"2025-03-15T00:00:00Z"`
	Message  string  `json:"message,omitempty"`
}

// ActivityDTO is a donation with display names resolved for tables and
// activity feeds.
type ActivityDTO struct {
	DonationID  string  `json:"donationId"`
	UserName    string  `json:"userName" example:"Jane Smith"`
	SchemeTitle string  `json:"schemeTitle" example:"Clean Water Initiative"`
	Amount      float64 `json:"amount" example:"150"`
	Date        string  `json:"date" example:"2025-03-15T00:00:00Z"`
	Message     string  `json:"message,omitempty"`
}

type DonorSummaryResponseDTO struct {
	Donations        []DonationResponseDTO `json:"donations"`
	TotalDonated     float64               `json:"totalDonated" example:"225"`
	SchemesSupported int                   `json:"schemesSupported" example:"2"`
	Latest           []ActivityDTO         `json:"latest"`
}
