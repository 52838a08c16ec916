// Package storage owns the three entity collections and mirrors every
// mutation to the durable blob store. Collections are the single source of
// truth; all accessors hand out copies, never references into the maps.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hopeworks/fundtrack/internal/blobstore"
	"github.com/hopeworks/fundtrack/internal/domain"
)

const (
	blobSchemes     = "schemes"
	blobUsers       = "users"
	blobDonations   = "donations"
	blobCurrentUser = "currentUser"
	blobInitialized = "initialized"
)

var ErrEmailExists = errors.New("user with this email already exists")

type Store struct {
	mu sync.RWMutex
	kv blobstore.Store

	schemes     map[string]domain.Scheme
	schemeOrder []string

	users     map[string]domain.User
	userOrder []string

	donations     map[string]domain.Donation
	donationOrder []string
}

func New(kv blobstore.Store) *Store {
	return &Store{
		kv:        kv,
		schemes:   make(map[string]domain.Scheme),
		users:     make(map[string]domain.User),
		donations: make(map[string]domain.Donation),
	}
}

// Init seeds the blob store with the built-in dataset on first ever startup
// and loads the persisted collections on every subsequent one.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.kv.Get(blobInitialized)
	if err == nil {
		return s.Load(ctx)
	}
	if !errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("can't read init marker: %w", err)
	}

	s.mu.Lock()
	s.replaceSchemesLocked(seedSchemes())
	s.replaceUsersLocked(seedUsers())
	s.replaceDonationsLocked(seedDonations())
	s.mu.Unlock()

	if err := s.Save(ctx); err != nil {
		return err
	}
	if err := s.kv.Put(blobInitialized, []byte("true")); err != nil {
		return fmt.Errorf("can't write init marker: %w", err)
	}
	zap.L().Info("blob store seeded with initial dataset")
	return nil
}

// Save serializes the three collections into their own blobs. The blobs are
// independent, so they are written concurrently.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	schemes := s.schemesLocked()
	users := s.usersLocked()
	donations := s.donationsLocked()
	s.mu.RUnlock()

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return s.putJSON(blobSchemes, schemes) })
	g.Go(func() error { return s.putJSON(blobUsers, users) })
	g.Go(func() error { return s.putJSON(blobDonations, donations) })

	if err := g.Wait(); err != nil {
		zap.L().Error("can't persist collections", zap.Error(err))
		return err
	}
	return nil
}

// Load replaces each in-memory collection with its persisted counterpart. A
// missing blob leaves that collection untouched; a malformed one is skipped,
// logged, and reported, while the remaining blobs still load.
func (s *Store) Load(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var errs []error
	s.mu.Lock()
	defer s.mu.Unlock()

	var schemes []domain.Scheme
	switch err := s.getJSON(blobSchemes, &schemes); {
	case err == nil:
		s.replaceSchemesLocked(schemes)
	case !errors.Is(err, blobstore.ErrNotFound):
		zap.L().Error("skipping schemes blob", zap.Error(err))
		errs = append(errs, err)
	}

	var users []domain.User
	switch err := s.getJSON(blobUsers, &users); {
	case err == nil:
		s.replaceUsersLocked(users)
	case !errors.Is(err, blobstore.ErrNotFound):
		zap.L().Error("skipping users blob", zap.Error(err))
		errs = append(errs, err)
	}

	var donations []domain.Donation
	switch err := s.getJSON(blobDonations, &donations); {
	case err == nil:
		s.replaceDonationsLocked(donations)
	case !errors.Is(err, blobstore.ErrNotFound):
		zap.L().Error("skipping donations blob", zap.Error(err))
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *Store) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("can't marshal %q: %w", key, err)
	}
	if err := s.kv.Put(key, data); err != nil {
		return err
	}
	return nil
}

func (s *Store) getJSON(key string, v any) error {
	data, err := s.kv.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("can't unmarshal %q: %w", key, err)
	}
	return nil
}

func (s *Store) replaceSchemesLocked(schemes []domain.Scheme) {
	s.schemes = make(map[string]domain.Scheme, len(schemes))
	s.schemeOrder = s.schemeOrder[:0]
	for _, scheme := range schemes {
		s.schemes[scheme.ID] = scheme
		s.schemeOrder = append(s.schemeOrder, scheme.ID)
	}
}

func (s *Store) replaceUsersLocked(users []domain.User) {
	s.users = make(map[string]domain.User, len(users))
	s.userOrder = s.userOrder[:0]
	for _, user := range users {
		s.users[user.ID] = user
		s.userOrder = append(s.userOrder, user.ID)
	}
}

func (s *Store) replaceDonationsLocked(donations []domain.Donation) {
	s.donations = make(map[string]domain.Donation, len(donations))
	s.donationOrder = s.donationOrder[:0]
	for _, donation := range donations {
		s.donations[donation.ID] = donation
		s.donationOrder = append(s.donationOrder, donation.ID)
	}
}

func (s *Store) schemesLocked() []domain.Scheme {
	out := make([]domain.Scheme, 0, len(s.schemeOrder))
	for _, id := range s.schemeOrder {
		out = append(out, s.schemes[id])
	}
	return out
}

func (s *Store) usersLocked() []domain.User {
	out := make([]domain.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out
}

func (s *Store) donationsLocked() []domain.Donation {
	out := make([]domain.Donation, 0, len(s.donationOrder))
	for _, id := range s.donationOrder {
		out = append(out, s.donations[id])
	}
	return out
}

func (s *Store) Schemes() []domain.Scheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schemesLocked()
}

func (s *Store) SchemeByID(id string) (*domain.Scheme, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scheme, ok := s.schemes[id]
	if !ok {
		return nil, false
	}
	return &scheme, true
}

func (s *Store) AddScheme(ctx context.Context, scheme domain.Scheme) error {
	s.mu.Lock()
	s.schemes[scheme.ID] = scheme
	s.schemeOrder = append(s.schemeOrder, scheme.ID)
	s.mu.Unlock()

	return s.Save(ctx)
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersLocked()
}

func (s *Store) UserByID(id string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return &user, true
}

func (s *Store) UserByEmail(email string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if user := s.users[id]; user.Email == email {
			return &user, true
		}
	}
	return nil, false
}

// AddUser enforces email uniqueness at the store level so no caller can
// bypass the check.
func (s *Store) AddUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	for _, id := range s.userOrder {
		if s.users[id].Email == user.Email {
			s.mu.Unlock()
			return ErrEmailExists
		}
	}
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	s.mu.Unlock()

	return s.Save(ctx)
}

func (s *Store) Donations() []domain.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.donationsLocked()
}

func (s *Store) DonationsBySchemeID(schemeID string) []domain.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Donation
	for _, id := range s.donationOrder {
		if donation := s.donations[id]; donation.SchemeID == schemeID {
			out = append(out, donation)
		}
	}
	return out
}

func (s *Store) DonationsByUserID(userID string) []domain.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Donation
	for _, id := range s.donationOrder {
		if donation := s.donations[id]; donation.UserID == userID {
			out = append(out, donation)
		}
	}
	return out
}

// AddDonation appends the donation and increments the referenced scheme's
// stored total when the scheme exists. Both mutations happen under one write
// lock, then the full write-through runs. Referential integrity is not
// checked here: an orphaned donation still counts toward the totals.
func (s *Store) AddDonation(ctx context.Context, donation domain.Donation) error {
	s.mu.Lock()
	s.donations[donation.ID] = donation
	s.donationOrder = append(s.donationOrder, donation.ID)
	if scheme, ok := s.schemes[donation.SchemeID]; ok {
		scheme.CurrentAmount += donation.Amount
		s.schemes[donation.SchemeID] = scheme
	}
	s.mu.Unlock()

	return s.Save(ctx)
}

// CurrentUser reads the persisted session snapshot. The snapshot is a cached
// copy of one user record and is only refreshed by login and register.
func (s *Store) CurrentUser() (*domain.User, error) {
	var user domain.User
	if err := s.getJSON(blobCurrentUser, &user); err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) SetCurrentUser(user domain.User) error {
	return s.putJSON(blobCurrentUser, user)
}

func (s *Store) ClearCurrentUser() error {
	return s.kv.Delete(blobCurrentUser)
}
