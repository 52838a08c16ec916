package userrepo

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

func (repo *Repository) List() []domain.User {
	return repo.store.Users()
}

func (repo *Repository) FindByID(id string) (*domain.User, bool) {
	return repo.store.UserByID(id)
}

func (repo *Repository) FindByEmail(email string) (*domain.User, bool) {
	return repo.store.UserByEmail(email)
}

// Create persists the user; storage.ErrEmailExists is returned when the email
// is already taken.
func (repo *Repository) Create(ctx context.Context, user domain.User) error {
	return repo.store.AddUser(ctx, user)
}

// SaveSession stores the current-session snapshot: a copy of the user record,
// including the password field, matching the persisted state layout.
func (repo *Repository) SaveSession(user domain.User) error {
	return repo.store.SetCurrentUser(user)
}

func (repo *Repository) Session() (*domain.User, error) {
	return repo.store.CurrentUser()
}

func (repo *Repository) ClearSession() error {
	return repo.store.ClearCurrentUser()
}
