package domain

import "time"

type Scheme struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"imageUrl"`
	EndDate       time.Time `json:"endDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Progress is the funded percentage based on the stored CurrentAmount,
// which stays authoritative for display even when it diverges from the
// per-donation recomputed total.
func (s *Scheme) Progress() float64 {
	if s.TargetAmount == 0 {
		return 0
	}
	return s.CurrentAmount / s.TargetAmount * 100
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Stored and compared in plain text. Swapping in a real strategy only
	// requires another auth.CredentialVerifier implementation.
	Password string `json:"password"`
}

type Donation struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	SchemeID string    `json:"schemeId"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Message  string    `json:"message,omitempty"`
}
