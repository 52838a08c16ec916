package dto

type CreateSchemeRequestDTO struct {
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description" validate:"required"`
	TargetAmount float64 `json:"targetAmount" validate:"required,gt=0"`
	Category     string  `json:"category" validate:"required"`
	ImageURL     string  `json:"imageUrl" validate:"omitempty,url"`
	EndDate      string  `json:"endDate" validate:"required,datetime=2006-01-02" example:"2025-12-31"`
}

type SchemeResponseDTO struct {
	ID            string  `json:"id" example:"1"`
	Title         string  `json:"title" example:"Clean Water Initiative"`
	Description   string  `json:"description"`
	TargetAmount  float64 `json:"targetAmount" example:"50000"`
	CurrentAmount float64 `json:"currentAmount" example:"28500"`
	Category      string  `json:"category" example:"Environment"`
	ImageURL      string  `json:"imageUrl"`
	EndDate       string  `json:"endDate" example:"2025-08-30T00:00:00Z"`
	CreatedAt     string  `json:"createdAt" example:"2025-01-15T00:00:00Z"`
	Progress      float64 `json:"progress" example:"57"`
}

type SchemeDetailResponseDTO struct {
	SchemeResponseDTO
	HighestDonation *ActivityDTO  `json:"highestDonation,omitempty"`
	RecentDonations []ActivityDTO `json:"recentDonations"`
}
