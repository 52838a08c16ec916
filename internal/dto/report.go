package dto

type StatsDTO struct {
	TotalRaised    float64 `json:"totalRaised" example:"225"`
	TotalUsers     int     `json:"totalUsers" example:"2"`
	TotalDonations int     `json:"totalDonations" example:"2"`
}

type SchemePerformanceDTO struct {
	ID          string  `json:"id" example:"1"`
	Title       string  `json:"title" example:"Clean Water Initiative"`
	TotalRaised float64 `json:"totalRaised" example:"150"`
	DonorCount  int     `json:"donorCount" example:"1"`
	Progress    float64 `json:"progress" example:"57"`
}

type DonorPerformanceDTO struct {
	ID            string  `json:"id" example:"1"`
	Name          string  `json:"name" example:"Jane Smith"`
	Email         string  `json:"email" example:"jane@example.com"`
	TotalDonated  float64 `json:"totalDonated" example:"225"`
	DonationCount int     `json:"donationCount" example:"2"`
}

type AdminReportResponseDTO struct {
	Stats             StatsDTO               `json:"stats"`
	SchemePerformance []SchemePerformanceDTO `json:"schemePerformance"`
	DonorPerformance  []DonorPerformanceDTO  `json:"donorPerformance"`
	RecentActivity    []ActivityDTO          `json:"recentActivity"`
}
