package donationrepo

import (
	"context"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/internal/storage"
)

type Repository struct {
	store *storage.Store
}

func New(store *storage.Store) *Repository {
	return &Repository{
		store: store,
	}
}

// Add appends the donation and bumps the referenced scheme's stored total in
// one store operation, followed by the full write-through.
func (repo *Repository) Add(ctx context.Context, donation domain.Donation) error {
	return repo.store.AddDonation(ctx, donation)
}

func (repo *Repository) ListAll() []domain.Donation {
	return repo.store.Donations()
}

func (repo *Repository) FindBySchemeID(schemeID string) []domain.Donation {
	return repo.store.DonationsBySchemeID(schemeID)
}

// FindByUserID is the computed donor projection: it is always derived from
// the donation collection, so it cannot drift after a reload.
func (repo *Repository) FindByUserID(userID string) []domain.Donation {
	return repo.store.DonationsByUserID(userID)
}
