package ports

import (
	"context"

	"github.com/servihub/booking-api/internal/core/domain"
)

// CatalogService exposes read access to the services collection.
type CatalogService interface {
	ListServices(ctx context.Context) ([]domain.Document, error)
	// GetService fetches one service by id, projected to the fixed
	// {id, title, img, price} subset.
	GetService(ctx context.Context, id string) (domain.Service, error)
}
