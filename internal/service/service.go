package service

import (
	pkgauth "github.com/hopeworks/fundtrack/pkg/auth"

	"github.com/hopeworks/fundtrack/internal/repo"
	"github.com/hopeworks/fundtrack/internal/service/authservice"
	"github.com/hopeworks/fundtrack/internal/service/donationservice"
	"github.com/hopeworks/fundtrack/internal/service/reportservice"
	"github.com/hopeworks/fundtrack/internal/service/schemeservice"
)

type Services struct {
	AuthService     *authservice.Service
	SchemeService   *schemeservice.Service
	DonationService *donationservice.Service
	ReportService   *reportservice.Service
}

func New(repo *repo.Repositories) *Services {
	// plain-text comparison stays the default credential strategy
	authService := authservice.New(repo.UserRepo, &pkgauth.PlainTextVerifier{})
	schemeService := schemeservice.New(repo.SchemeRepo)
	donationService := donationservice.New(repo.DonationRepo, repo.UserRepo, repo.SchemeRepo)
	reportService := reportservice.New(repo.SchemeRepo, repo.UserRepo, repo.DonationRepo)

	return &Services{
		AuthService:     authService,
		SchemeService:   schemeService,
		DonationService: donationService,
		ReportService:   reportService,
	}
}
