package schemeservice

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hopeworks/fundtrack/internal/domain"
)

type Repo interface {
	List() []domain.Scheme
	FindByID(id string) (*domain.Scheme, bool)
	Create(ctx context.Context, scheme domain.Scheme) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Sort keys accepted by List.
const (
	SortProgress   string = "progress"
	SortNewest     string = "newest"
	SortEndingSoon string = "ending-soon"
	SortAmountHigh string = "amount-high"
	SortAmountLow  string = "amount-low"
)

var ErrSchemeNotFound = errors.New("scheme not found")

// List filters by a case-insensitive substring over title and description,
// by exact category ("" and "All" match everything), then sorts by the given
// key. An unknown sort key keeps the insertion order.
func (s *Service) List(ctx context.Context, search, category, sortKey string) ([]domain.Scheme, error) {
	needle := strings.ToLower(search)

	schemes := make([]domain.Scheme, 0)
	for _, scheme := range s.repo.List() {
		if needle != "" &&
			!strings.Contains(strings.ToLower(scheme.Title), needle) &&
			!strings.Contains(strings.ToLower(scheme.Description), needle) {
			continue
		}
		if category != "" && category != "All" && scheme.Category != category {
			continue
		}
		schemes = append(schemes, scheme)
	}

	switch sortKey {
	case SortProgress, "":
		sort.SliceStable(schemes, func(i, j int) bool {
			return schemes[i].Progress() > schemes[j].Progress()
		})
	case SortNewest:
		sort.SliceStable(schemes, func(i, j int) bool {
			return schemes[i].CreatedAt.After(schemes[j].CreatedAt)
		})
	case SortEndingSoon:
		sort.SliceStable(schemes, func(i, j int) bool {
			return schemes[i].EndDate.Before(schemes[j].EndDate)
		})
	case SortAmountHigh:
		sort.SliceStable(schemes, func(i, j int) bool {
			return schemes[i].CurrentAmount > schemes[j].CurrentAmount
		})
	case SortAmountLow:
		sort.SliceStable(schemes, func(i, j int) bool {
			return schemes[i].CurrentAmount < schemes[j].CurrentAmount
		})
	}

	return schemes, nil
}

// Categories returns "All" followed by the distinct categories in scheme
// insertion order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	categories := []string{"All"}
	for _, scheme := range s.repo.List() {
		if _, ok := seen[scheme.Category]; ok {
			continue
		}
		seen[scheme.Category] = struct{}{}
		categories = append(categories, scheme.Category)
	}
	return categories, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Scheme, error) {
	scheme, ok := s.repo.FindByID(id)
	if !ok {
		return nil, ErrSchemeNotFound
	}
	return scheme, nil
}

// Create registers a new campaign with a zero raised amount.
func (s *Service) Create(ctx context.Context, title, description string, target float64, category, imageURL string, endDate time.Time) (*domain.Scheme, error) {
	scheme := domain.Scheme{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   description,
		TargetAmount:  target,
		CurrentAmount: 0,
		Category:      category,
		ImageURL:      imageURL,
		EndDate:       endDate,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Create(ctx, scheme); err != nil {
		zap.L().Error("can't create scheme: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("scheme created", zap.String("id", scheme.ID), zap.String("title", title))
	return &scheme, nil
}
