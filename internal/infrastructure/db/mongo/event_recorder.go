package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/servihub/booking-api/internal/core/domain"
)

// EventRecorder persists booking audit records to the booking_events
// collection.
type EventRecorder struct {
	col *mongo.Collection
}

func NewEventRecorder(db *mongo.Database) *EventRecorder {
	return &EventRecorder{col: db.Collection(domain.CollectionBookingEvents)}
}

// Record inserts a single audit event.
func (r *EventRecorder) Record(ctx context.Context, event domain.BookingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert booking event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the read and audit paths rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection(domain.CollectionBookings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("bookings indexes: %w", err)
	}

	_, err = db.Collection(domain.CollectionBookingEvents).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "booking_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("booking_events indexes: %w", err)
	}
	return nil
}
