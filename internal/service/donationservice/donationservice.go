package donationservice

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hopeworks/fundtrack/internal/domain"
)

type Repo interface {
	Add(ctx context.Context, donation domain.Donation) error
	FindBySchemeID(schemeID string) []domain.Donation
	FindByUserID(userID string) []domain.Donation
}

type UserRepo interface {
	FindByID(id string) (*domain.User, bool)
}

type SchemeRepo interface {
	FindByID(id string) (*domain.Scheme, bool)
}

type Service struct {
	repo       Repo
	userRepo   UserRepo
	schemeRepo SchemeRepo
}

func New(repo Repo, userRepo UserRepo, schemeRepo SchemeRepo) *Service {
	return &Service{
		repo:       repo,
		userRepo:   userRepo,
		schemeRepo: schemeRepo,
	}
}

// Add records a contribution. Amount sign and referential integrity are the
// caller's responsibility; the store increments the scheme total only when
// the referenced scheme exists.
func (s *Service) Add(ctx context.Context, userID, schemeID string, amount float64, message string) (*domain.Donation, error) {
	donation := domain.Donation{
		ID:       uuid.NewString(),
		UserID:   userID,
		SchemeID: schemeID,
		Amount:   amount,
		Date:     time.Now(),
		Message:  message,
	}
	if err := s.repo.Add(ctx, donation); err != nil {
		zap.L().Error("can't add donation: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("donation recorded",
		zap.String("scheme_id", schemeID),
		zap.Float64("amount", amount))
	return &donation, nil
}

// Highest returns the scheme's largest donation, first occurrence winning
// ties, or nil when the scheme has none.
func (s *Service) Highest(ctx context.Context, schemeID string) (*domain.Donation, error) {
	donations := s.repo.FindBySchemeID(schemeID)
	if len(donations) == 0 {
		return nil, nil
	}
	highest := donations[0]
	for _, donation := range donations[1:] {
		if donation.Amount > highest.Amount {
			highest = donation
		}
	}
	return &highest, nil
}

// SchemeActivity returns the scheme's latest n donations, newest first, with
// donor names resolved.
func (s *Service) SchemeActivity(ctx context.Context, schemeID string, n int) ([]domain.ActivityEntry, error) {
	return s.activity(s.repo.FindBySchemeID(schemeID), n), nil
}

// Summary backs the donor dashboard: the user's donations plus the derived
// totals and the latest five contributions.
func (s *Service) Summary(ctx context.Context, userID string) (*domain.DonorSummary, error) {
	donations := s.repo.FindByUserID(userID)

	var total float64
	schemes := make(map[string]struct{})
	for _, donation := range donations {
		total += donation.Amount
		schemes[donation.SchemeID] = struct{}{}
	}

	return &domain.DonorSummary{
		Donations:        donations,
		TotalDonated:     total,
		SchemesSupported: len(schemes),
		Latest:           s.activity(donations, 5),
	}, nil
}

func (s *Service) activity(donations []domain.Donation, n int) []domain.ActivityEntry {
	sorted := make([]domain.Donation, len(donations))
	copy(sorted, donations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	entries := make([]domain.ActivityEntry, 0, len(sorted))
	for _, donation := range sorted {
		userName := "Unknown User"
		if user, ok := s.userRepo.FindByID(donation.UserID); ok {
			userName = user.Name
		}
		schemeTitle := "Unknown Scheme"
		if scheme, ok := s.schemeRepo.FindByID(donation.SchemeID); ok {
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
	return entries
}
