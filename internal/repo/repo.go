package repo

import (
	donationrepo "github.com/hopeworks/fundtrack/internal/repo/donation-repo"
	schemerepo "github.com/hopeworks/fundtrack/internal/repo/scheme-repo"
	userrepo "github.com/hopeworks/fundtrack/internal/repo/user-repo"
	"github.com/hopeworks/fundtrack/internal/storage"
)

type Repositories struct {
	SchemeRepo   *schemerepo.Repository
	UserRepo     *userrepo.Repository
	DonationRepo *donationrepo.Repository
}

func New(store *storage.Store) *Repositories {
	return &Repositories{
		SchemeRepo:   schemerepo.New(store),
		UserRepo:     userrepo.New(store),
		DonationRepo: donationrepo.New(store),
	}
}
