package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/hopeworks/fundtrack/docs"
	adminhandlers "github.com/hopeworks/fundtrack/internal/handlers/admin"
	authhandlers "github.com/hopeworks/fundtrack/internal/handlers/auth"
	donationhandlers "github.com/hopeworks/fundtrack/internal/handlers/donations"
	schemehandlers "github.com/hopeworks/fundtrack/internal/handlers/schemes"
	"github.com/hopeworks/fundtrack/internal/service"
	"github.com/hopeworks/fundtrack/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type SchemeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Categories(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	SchemeHandler   SchemeHandler
	DonationHandler DonationHandler
	AdminHandler    AdminHandler

	users      auth.UserDirectory
	adminEmail string
}

func New(s *service.Services, users auth.UserDirectory, adminEmail string) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		SchemeHandler:   schemehandlers.New(s.SchemeService, s.DonationService),
		DonationHandler: donationhandlers.New(s.DonationService, s.SchemeService),
		AdminHandler:    adminhandlers.New(s.ReportService),
		users:           users,
		adminEmail:      adminEmail,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/logout", h.AuthHandler.Logout)
			r.Get("/me", h.AuthHandler.Me)
		})

		r.Route("/schemes", func(r chi.Router) {
			r.Get("/", h.SchemeHandler.List)
			r.Get("/categories", h.SchemeHandler.Categories)
			r.Get("/{id}", h.SchemeHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(auth.SessionMiddleware(h.users), auth.AdminMiddleware(h.adminEmail))
				r.Post("/", h.SchemeHandler.Create)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(h.users))
			r.Route("/donations", func(r chi.Router) {
				r.Post("/", h.DonationHandler.Add)
				r.Get("/mine", h.DonationHandler.Mine)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(h.users), auth.AdminMiddleware(h.adminEmail))
			r.Get("/admin/report", h.AdminHandler.Report)
		})
	})

	return r
}
