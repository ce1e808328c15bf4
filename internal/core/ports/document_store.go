package ports

import (
	"context"

	"github.com/servihub/booking-api/internal/core/domain"
)

// DocumentStore is the pluggable persistence backend. Implementations wrap a
// document database exposing field-equality queries over named collections.
//
// Identifier handling: id strings are opaque store-native keys. A malformed
// id fails with domain.ErrInvalidID before any store call; an absent
// document fails with domain.ErrNotFound. UpdateFields and DeleteByID report
// zero affected documents as a successful call, not an error.
type DocumentStore interface {
	FindAll(ctx context.Context, collection string, filter domain.Filter) ([]domain.Document, error)
	FindByID(ctx context.Context, collection, id string) (domain.Document, error)
	Insert(ctx context.Context, collection string, doc domain.Document) (string, error)
	UpdateFields(ctx context.Context, collection, id string, fields domain.Document) (matched, modified int64, err error)
	DeleteByID(ctx context.Context, collection, id string) (deleted int64, err error)
}
