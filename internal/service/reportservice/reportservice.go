package reportservice

import (
	"context"
	"sort"

	"github.com/hopeworks/fundtrack/internal/domain"
)

type SchemeRepo interface {
	List() []domain.Scheme
}

type UserRepo interface {
	List() []domain.User
}

type DonationRepo interface {
	ListAll() []domain.Donation
}

// Service computes the admin aggregates. Every report is a pure read over
// the collections, recomputed per call.
type Service struct {
	schemeRepo   SchemeRepo
	userRepo     UserRepo
	donationRepo DonationRepo
}

func New(schemeRepo SchemeRepo, userRepo UserRepo, donationRepo DonationRepo) *Service {
	return &Service{
		schemeRepo:   schemeRepo,
		userRepo:     userRepo,
		donationRepo: donationRepo,
	}
}

func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	donations := s.donationRepo.ListAll()

	var raised float64
	for _, donation := range donations {
		raised += donation.Amount
	}
	return &domain.Stats{
		TotalRaised:    raised,
		TotalUsers:     len(s.userRepo.List()),
		TotalDonations: len(donations),
	}, nil
}

// SchemePerformance recomputes each scheme's total from the donation
// collection rather than reading the stored CurrentAmount, so the report can
// be checked against the stored totals. Progress deliberately keeps using
// the stored amount. Rows are sorted by total raised, descending.
func (s *Service) SchemePerformance(ctx context.Context) ([]domain.SchemePerformance, error) {
	totals := make(map[string]float64)
	donors := make(map[string]map[string]struct{})
	for _, donation := range s.donationRepo.ListAll() {
		totals[donation.SchemeID] += donation.Amount
		if donors[donation.SchemeID] == nil {
			donors[donation.SchemeID] = make(map[string]struct{})
		}
		donors[donation.SchemeID][donation.UserID] = struct{}{}
	}

	rows := make([]domain.SchemePerformance, 0)
	for _, scheme := range s.schemeRepo.List() {
		rows = append(rows, domain.SchemePerformance{
			SchemeID:    scheme.ID,
			Title:       scheme.Title,
			TotalRaised: totals[scheme.ID],
			DonorCount:  len(donors[scheme.ID]),
			Progress:    scheme.Progress(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRaised > rows[j].TotalRaised
	})
	return rows, nil
}

// DonorPerformance lists every user with their donation totals, sorted by
// total donated, descending.
func (s *Service) DonorPerformance(ctx context.Context) ([]domain.DonorPerformance, error) {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, donation := range s.donationRepo.ListAll() {
		totals[donation.UserID] += donation.Amount
		counts[donation.UserID]++
	}

	rows := make([]domain.DonorPerformance, 0)
	for _, user := range s.userRepo.List() {
		rows = append(rows, domain.DonorPerformance{
			UserID:        user.ID,
			Name:          user.Name,
			Email:         user.Email,
			TotalDonated:  totals[user.ID],
			DonationCount: counts[user.ID],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalDonated > rows[j].TotalDonated
	})
	return rows, nil
}

// RecentActivity returns the n newest donations across all schemes with
// display names resolved; dangling references degrade to the Unknown
// fallbacks instead of failing.
func (s *Service) RecentActivity(ctx context.Context, n int) ([]domain.ActivityEntry, error) {
	donations := s.donationRepo.ListAll()
	sort.SliceStable(donations, func(i, j int) bool {
		return donations[i].Date.After(donations[j].Date)
	})
	if n > 0 && len(donations) > n {
		donations = donations[:n]
	}

	users := make(map[string]domain.User)
	for _, user := range s.userRepo.List() {
		users[user.ID] = user
	}
	schemes := make(map[string]domain.Scheme)
	for _, scheme := range s.schemeRepo.List() {
		schemes[scheme.ID] = scheme
	}

	entries := make([]domain.ActivityEntry, 0, len(donations))
	for _, donation := range donations {
		userName := "Unknown User"
		if user, ok := users[donation.UserID]; ok {
			userName = user.Name
		}
		schemeTitle := "Unknown Scheme"
		if scheme, ok := schemes[donation.SchemeID]; ok {
			schemeTitle = scheme.Title
		}
		entries = append(entries, domain.ActivityEntry{
			DonationID:  donation.ID,
			UserName:    userName,
			SchemeTitle: schemeTitle,
			Amount:      donation.Amount,
			Date:        donation.Date,
			Message:     donation.Message,
		})
	}
	return entries, nil
}
