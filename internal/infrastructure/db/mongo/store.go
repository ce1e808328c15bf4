package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/servihub/booking-api/internal/api/metrics"
	"github.com/servihub/booking-api/internal/core/domain"
)

// Store adapts a *mongo.Database to the ports.DocumentStore contract.
// Documents cross the boundary as domain.Document maps with the ObjectID
// key rendered as its hex string under "_id".
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// FindAll returns every document in collection matching the field-equality
// filter. A nil filter matches everything.
func (s *Store) FindAll(ctx context.Context, collection string, filter domain.Filter) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	defer observe(collection, "find_all")()

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cur, err := s.db.Collection(collection).Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBson(m))
	}
	return docs, nil
}

// FindByID fetches a single document by its hex ObjectID.
func (s *Store) FindByID(ctx context.Context, collection, id string) (domain.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	defer observe(collection, "find_by_id")()

	var raw bson.M
	if err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s/%s: %w", collection, id, err)
	}
	return fromBson(raw), nil
}

// Insert stores doc as-is and returns the generated hex id.
func (s *Store) Insert(ctx context.Context, collection string, doc domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	defer observe(collection, "insert")()

	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// UpdateFields applies a $set of fields to the document with the given id.
// An absent id yields zero counts, not an error.
func (s *Store) UpdateFields(ctx context.Context, collection, id string, fields domain.Document) (int64, int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	defer observe(collection, "update_fields")()

	res, err := s.db.Collection(collection).UpdateByID(ctx, oid, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return 0, 0, fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// DeleteByID removes the document with the given id. An absent id yields a
// zero count, not an error.
func (s *Store) DeleteByID(ctx context.Context, collection, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	defer observe(collection, "delete_by_id")()

	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return res.DeletedCount, nil
}

// parseID converts an externally supplied id string into an ObjectID,
// failing with domain.ErrInvalidID before any store call.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// fromBson renders a decoded document for the domain layer, translating the
// ObjectID key to its hex form. Nested documents are left untouched; callers
// treat them as opaque.
func fromBson(m bson.M) domain.Document {
	doc := domain.Document{}
	for k, v := range m {
		if oid, ok := v.(primitive.ObjectID); ok {
			doc[k] = oid.Hex()
			continue
		}
		doc[k] = v
	}
	return doc
}

func observe(collection, operation string) func() {
	timer := prometheus.NewTimer(metrics.StoreOperationDuration.WithLabelValues(collection, operation))
	return func() { timer.ObserveDuration() }
}
