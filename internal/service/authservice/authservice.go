package authservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/pkg/auth"
)

type Repo interface {
	FindByEmail(email string) (*domain.User, bool)
	Create(ctx context.Context, user domain.User) (err error)
	SaveSession(user domain.User) error
	Session() (*domain.User, error)
	ClearSession() error
}

type Service struct {
	userRepo Repo
	verifier auth.CredentialVerifier
}

func New(repo Repo, verifier auth.CredentialVerifier) *Service {
	return &Service{
		userRepo: repo,
		verifier: verifier,
	}
}

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Register creates the account and makes it the active session, mirroring
// what a successful registration does in the UI flow. Email uniqueness is
// checked here and enforced again inside the store.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if _, exists := s.userRepo.FindByEmail(email); exists {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	stored, err := s.verifier.Encode(password)
	if err != nil {
		zap.L().Error("can't encode password: ", zap.Error(err))
		return nil, err
	}
	user := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: stored,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.SaveSession(user); err != nil {
		zap.L().Error("can't save session: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return &user, nil
}

// Login authenticates by email and credential comparison. With the default
// plain-text verifier this is the exact (email, password) match the seed
// dataset expects.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, ok := s.userRepo.FindByEmail(email)
	if !ok {
		zap.L().Info("login for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !s.verifier.Compare(user.Password, password) {
		zap.L().Info("login with wrong password", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if err := s.userRepo.SaveSession(*user); err != nil {
		zap.L().Error("can't save session: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.userRepo.ClearSession()
}

// CurrentSession returns the persisted session snapshot, or nil when nobody
// is logged in. The snapshot is a point-in-time copy and is only refreshed by
// Register and Login.
func (s *Service) CurrentSession(ctx context.Context) (*domain.User, error) {
	return s.userRepo.Session()
}
