package domain

import "time"

// BookingAction classifies a booking mutation for the audit trail.
type BookingAction string

const (
	ActionCreated       BookingAction = "created"
	ActionStatusChanged BookingAction = "status_changed"
	ActionDeleted       BookingAction = "deleted"
)

// BookingEvent is an audit record appended to the booking_events collection
// whenever a booking is mutated. Written asynchronously, best-effort.
type BookingEvent struct {
	BookingID string        `bson:"booking_id"`
	Action    BookingAction `bson:"action"`
	Status    string        `bson:"status,omitempty"`
	Email     string        `bson:"email,omitempty"`
	Timestamp time.Time     `bson:"timestamp"`
}
