package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/servihub/booking-api/internal/core/domain"
	"github.com/servihub/booking-api/internal/core/ports"
)

// BookingService implements the booking CRUD operations. Booking payloads
// are opaque pass-through documents; only the email and status fields are
// interpreted. Every mutation is mirrored to the audit sink, best-effort.
type BookingService struct {
	store  ports.DocumentStore
	events ports.EventSink
	logger zerolog.Logger
}

func NewBookingService(store ports.DocumentStore, events ports.EventSink, logger zerolog.Logger) *BookingService {
	return &BookingService{store: store, events: events, logger: logger}
}

// Create inserts the caller-supplied document as-is and returns the
// generated id.
func (s *BookingService) Create(ctx context.Context, doc domain.Document) (string, error) {
	id, err := s.store.Insert(ctx, domain.CollectionBookings, doc)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return "", fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info().Str("booking_id", id).Msg("booking created")
	s.events.Enqueue(domain.BookingEvent{
		BookingID: id,
		Action:    domain.ActionCreated,
		Status:    bookingStatus(doc),
		Email:     domain.BookingEmail(doc),
		Timestamp: time.Now().UTC(),
	})

	return id, nil
}

// ListByEmail returns the bookings owned by email. The verified token claims
// must carry that exact email; ownership is enforced here, not in the store.
func (s *BookingService) ListByEmail(ctx context.Context, claims domain.Claims, email string) ([]domain.Document, error) {
	if claims.Email() != email {
		return nil, domain.ErrForbidden
	}

	docs, err := s.store.FindAll(ctx, domain.CollectionBookings, domain.Filter{"email": email})
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to list bookings")
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return docs, nil
}

// UpdateStatus applies a partial update of the status field. Updating an
// absent id reports zero matched documents, not an error.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (ports.UpdateResult, error) {
	matched, modified, err := s.store.UpdateFields(ctx, domain.CollectionBookings, id, domain.Document{"status": status})
	if err != nil {
		s.logger.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")
		return ports.UpdateResult{}, fmt.Errorf("update booking %s: %w", id, err)
	}

	if modified > 0 {
		s.events.Enqueue(domain.BookingEvent{
			BookingID: id,
			Action:    domain.ActionStatusChanged,
			Status:    status,
			Timestamp: time.Now().UTC(),
		})
	}

	return ports.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

// Delete removes a booking permanently. Deleting an absent id reports zero
// deleted documents, not an error.
func (s *BookingService) Delete(ctx context.Context, id string) (ports.DeleteResult, error) {
	deleted, err := s.store.DeleteByID(ctx, domain.CollectionBookings, id)
	if err != nil {
		s.logger.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")
		return ports.DeleteResult{}, fmt.Errorf("delete booking %s: %w", id, err)
	}

	if deleted > 0 {
		s.events.Enqueue(domain.BookingEvent{
			BookingID: id,
			Action:    domain.ActionDeleted,
			Timestamp: time.Now().UTC(),
		})
	}

	return ports.DeleteResult{DeletedCount: deleted}, nil
}

func bookingStatus(doc domain.Document) string {
	status, _ := doc["status"].(string)
	return status
}
