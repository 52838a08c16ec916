package schemerepo

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

func (repo *Repository) List() []domain.Scheme {
	return repo.store.Schemes()
}

func (repo *Repository) FindByID(id string) (*domain.Scheme, bool) {
	return repo.store.SchemeByID(id)
}

// Create persists the scheme and triggers the full write-through.
func (repo *Repository) Create(ctx context.Context, scheme domain.Scheme) error {
	return repo.store.AddScheme(ctx, scheme)
}
