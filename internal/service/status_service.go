package service

import (
	"context"
	"fmt"
	"time"

	"monastery-guide/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatusStore is the persistence surface for liveness-probe records.
type StatusStore interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context) ([]*models.StatusCheck, error)
}

type StatusService struct {
	store  StatusStore
	logger *zap.Logger
}

func NewStatusService(store StatusStore, logger *zap.Logger) *StatusService {
	return &StatusService{
		store:  store,
		logger: logger,
	}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to create status check: %w", err)
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	checks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	return checks, nil
}
