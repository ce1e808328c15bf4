package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/servihub/booking-api/internal/core/domain"
	"github.com/servihub/booking-api/internal/core/ports"
)

// CatalogService serves read access to the services collection. The catalog
// is maintained out-of-band; no write path exists here.
type CatalogService struct {
	store  ports.DocumentStore
	logger zerolog.Logger
}

func NewCatalogService(store ports.DocumentStore, logger zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, logger: logger}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.store.FindAll(ctx, domain.CollectionServices, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list services")
		return nil, fmt.Errorf("list services: %w", err)
	}
	return docs, nil
}

// GetService fetches one service by id, projected to the fixed field subset.
func (s *CatalogService) GetService(ctx context.Context, id string) (domain.Service, error) {
	doc, err := s.store.FindByID(ctx, domain.CollectionServices, id)
	if err != nil {
		s.logger.Error().Err(err).Str("service_id", id).Msg("failed to get service")
		return domain.Service{}, fmt.Errorf("get service %s: %w", id, err)
	}
	return domain.ServiceFromDocument(doc), nil
}
