package ports

import (
	"context"

	"github.com/servihub/booking-api/internal/core/domain"
)

// UpdateResult reports how many documents a partial update touched.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// BookingService implements the booking CRUD operations. Create, update and
// delete are unauthenticated by contract; ListByEmail enforces that the
// verified caller identity owns the requested bookings.
type BookingService interface {
	// Create inserts the caller-supplied document as-is and returns the
	// generated id.
	Create(ctx context.Context, doc domain.Document) (string, error)
	// ListByEmail returns the caller's bookings. Fails with
	// domain.ErrForbidden when claims.Email() != email.
	ListByEmail(ctx context.Context, claims domain.Claims, email string) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id, status string) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
