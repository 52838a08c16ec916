package storage

import (
	"time"

	"github.com/hopeworks/fundtrack/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedSchemes returns the built-in example campaigns written to the blob
// store on first ever startup.
func seedSchemes() []domain.Scheme {
	return []domain.Scheme{
		{
			ID:            "1",
			Title:         "Clean Water Initiative",
			Description:   "Help us provide clean drinking water to communities in need. This initiative aims to install water purification systems in 50 villages, affecting over 10,000 lives positively.",
			TargetAmount:  50000,
			CurrentAmount: 28500,
			Category:      "Environment",
			ImageURL:      "https://images.unsplash.com/photo-1500673922987-e212871fec22?auto=format&fit=crop&w=800&q=80",
			EndDate:       date(2025, time.August, 30),
			CreatedAt:     date(2025, time.January, 15),
		},
		{
			ID:            "2",
			Title:         "Education for All",
			Description:   "Support our mission to provide quality education to underprivileged children. Your donations will help fund school supplies, scholarships, and teacher training programs.",
			TargetAmount:  75000,
			CurrentAmount: 42000,
			Category:      "Education",
			ImageURL:      "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&w=800&q=80",
			EndDate:       date(2025, time.July, 25),
			CreatedAt:     date(2025, time.February, 10),
		},
		{
			ID:            "3",
			Title:         "Digital Literacy Program",
			Description:   "Bridge the digital divide by helping us provide computers and internet access to rural communities. This program also includes training in basic digital skills.",
			TargetAmount:  60000,
			CurrentAmount: 15000,
			Category:      "Technology",
			ImageURL:      "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?auto=format&fit=crop&w=800&q=80",
			EndDate:       date(2025, time.September, 15),
			CreatedAt:     date(2025, time.March, 5),
		},
		{
			ID:            "4",
			Title:         "Women Empowerment Project",
			Description:   "Help women develop skills for financial independence through vocational training and micro-loans for small businesses.",
			TargetAmount:  40000,
			CurrentAmount: 22000,
			Category:      "Social",
			ImageURL:      "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?auto=format&fit=crop&w=800&q=80",
			EndDate:       date(2025, time.June, 30),
			CreatedAt:     date(2025, time.January, 25),
		},
	}
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "1", Name: "Jane Smith", Email: "jane@example.com", Password: "password123"},
		{ID: "2", Name: "Admin User", Email: "admin@example.com", Password: "admin123"},
	}
}

func seedDonations() []domain.Donation {
	return []domain.Donation{
		{
			ID:       "1",
			UserID:   "1",
			SchemeID: "1",
			Amount:   150,
			Date:     date(2025, time.March, 15),
			Message:  "Happy to support this important cause!",
		},
		{
			ID:       "2",
			UserID:   "1",
			SchemeID: "2",
			Amount:   75,
			Date:     date(2025, time.March, 20),
		},
	}
}
