package domain

import "time"

// SchemePerformance is an admin report row. TotalRaised is recomputed from the
// donation collection and may be compared against the scheme's stored
// CurrentAmount; Progress always uses the stored amount.
type SchemePerformance struct {
	SchemeID    string  `json:"id"`
	Title       string  `json:"title"`
	TotalRaised float64 `json:"totalRaised"`
	DonorCount  int     `json:"donorCount"`
	Progress    float64 `json:"progress"`
}

type DonorPerformance struct {
	UserID        string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	TotalDonated  float64 `json:"totalDonated"`
	DonationCount int     `json:"donationCount"`
}

// ActivityEntry is a donation with display names resolved. Missing referents
// degrade to "Unknown User" / "Unknown Scheme" rather than an error.
type ActivityEntry struct {
	DonationID  string    `json:"donationId"`
	UserName    string    `json:"userName"`
	SchemeTitle string    `json:"schemeTitle"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Message     string    `json:"message,omitempty"`
}

type Stats struct {
	TotalRaised    float64 `json:"totalRaised"`
	TotalUsers     int     `json:"totalUsers"`
	TotalDonations int     `json:"totalDonations"`
}

// DonorSummary backs the user dashboard: the user's own donations with the
// derived totals the dashboard shows.
type DonorSummary struct {
	Donations        []Donation      `json:"donations"`
	TotalDonated     float64         `json:"totalDonated"`
	SchemesSupported int             `json:"schemesSupported"`
	Latest           []ActivityEntry `json:"latest"`
}
