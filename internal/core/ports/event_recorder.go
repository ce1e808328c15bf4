package ports

import (
	"context"

	"github.com/servihub/booking-api/internal/core/domain"
)

// EventRecorder persists a single audit record. Implemented by the mongo
// store; consumed by the queue dispatcher workers.
type EventRecorder interface {
	Record(ctx context.Context, event domain.BookingEvent) error
}

// EventSink accepts audit events for asynchronous persistence. Enqueue never
// blocks the calling request; events may be dropped under sustained
// backpressure.
type EventSink interface {
	Enqueue(event domain.BookingEvent)
}
