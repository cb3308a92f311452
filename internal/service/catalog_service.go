package service

import (
	"context"
	"fmt"
	"time"

	"monastery-guide/internal/catalog"
	"monastery-guide/internal/dto"
	"monastery-guide/internal/models"
	"monastery-guide/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MonasteryStore is the persistence surface the catalog service needs.
type MonasteryStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, m *models.Monastery) error
	CreateBatch(ctx context.Context, monasteries []*models.Monastery) error
	List(ctx context.Context, filter repository.MonasteryFilter) ([]*models.Monastery, error)
	GetByID(ctx context.Context, id string) (*models.Monastery, error)
	ListDistinct(ctx context.Context, column string) ([]string, error)
}

type CatalogService struct {
	store  MonasteryStore
	logger *zap.Logger
}

func NewCatalogService(store MonasteryStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// Initialize seeds the store with the built-in monastery catalog. If records
// already exist it reports the count and writes nothing, so repeated calls
// seed at most once. The check-then-insert is not atomic against concurrent
// initializers; that race is accepted.
func (s *CatalogService) Initialize(ctx context.Context) (string, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count monasteries: %w", err)
	}
	if count > 0 {
		return fmt.Sprintf("Database already contains %d monasteries", count), nil
	}

	seed := catalog.Monasteries()
	for _, m := range seed {
		m.ID = uuid.New().String()
		m.CreatedAt = time.Now().UTC()
	}

	if err := s.store.CreateBatch(ctx, seed); err != nil {
		return "", fmt.Errorf("failed to insert seed monasteries: %w", err)
	}

	s.logger.Info("Monastery catalog seeded", zap.Int("count", len(seed)))
	return fmt.Sprintf("Successfully initialized %d monasteries", len(seed)), nil
}

func (s *CatalogService) List(ctx context.Context, filter repository.MonasteryFilter) ([]*models.Monastery, error) {
	monasteries, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list monasteries: %w", err)
	}
	return monasteries, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Monastery, error) {
	return s.store.GetByID(ctx, id)
}

// Create persists a whole record, assigning its identifier and creation
// timestamp. Duplicate names are permitted; only the identifier is unique.
func (s *CatalogService) Create(ctx context.Context, m *models.Monastery) (*models.Monastery, error) {
	m.ID = uuid.New().String()
	m.CreatedAt = time.Now().UTC()

	if err := s.store.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create monastery: %w", err)
	}
	return m, nil
}

func (s *CatalogService) Districts(ctx context.Context) ([]string, error) {
	return s.store.ListDistinct(ctx, "district")
}

func (s *CatalogService) Traditions(ctx context.Context) ([]string, error) {
	return s.store.ListDistinct(ctx, "tradition")
}

// Festivals flattens every festival of every stored monastery, keeping store
// order for monasteries and stored order for each festival list.
func (s *CatalogService) Festivals(ctx context.Context) ([]dto.FestivalEntry, error) {
	monasteries, err := s.store.List(ctx, repository.MonasteryFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list monasteries: %w", err)
	}

	festivals := []dto.FestivalEntry{}
	for _, m := range monasteries {
		for _, f := range m.Festivals {
			festivals = append(festivals, dto.FestivalEntry{
				Name:         f.Name,
				Date:         f.Date,
				Description:  f.Description,
				Significance: f.Significance,
				Monastery:    m.Name,
				Location:     m.Location,
			})
		}
	}
	return festivals, nil
}
