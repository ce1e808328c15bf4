package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/servihub/booking-api/internal/core/domain"
	"github.com/servihub/booking-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubStore struct {
	docs       map[string][]domain.Document // keyed by collection
	nextID     string
	failWith   error // if set, every operation returns this error
	lastFilter domain.Filter
}

func newStubStore() *stubStore {
	return &stubStore{
		docs:   make(map[string][]domain.Document),
		nextID: "64b0c0ffee0000000000c0de",
	}
}

// validID mirrors the real adapter: 24 hex characters or ErrInvalidID.
func validID(id string) bool {
	if len(id) != 24 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

func (s *stubStore) FindAll(_ context.Context, collection string, filter domain.Filter) ([]domain.Document, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.lastFilter = filter

	var out []domain.Document
	for _, doc := range s.docs[collection] {
		match := true
		for k, v := range filter {
			if doc[k] != v {
				match = false
				break
			}
		}
		if match {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *stubStore) FindByID(_ context.Context, collection, id string) (domain.Document, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if !validID(id) {
		return nil, domain.ErrInvalidID
	}
	for _, doc := range s.docs[collection] {
		if doc["_id"] == id {
			return doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubStore) Insert(_ context.Context, collection string, doc domain.Document) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	stored := domain.Document{}
	for k, v := range doc {
		stored[k] = v
	}
	stored["_id"] = s.nextID
	s.docs[collection] = append(s.docs[collection], stored)
	return s.nextID, nil
}

func (s *stubStore) UpdateFields(_ context.Context, collection, id string, fields domain.Document) (int64, int64, error) {
	if s.failWith != nil {
		return 0, 0, s.failWith
	}
	if !validID(id) {
		return 0, 0, domain.ErrInvalidID
	}
	for _, doc := range s.docs[collection] {
		if doc["_id"] == id {
			var modified int64
			for k, v := range fields {
				if doc[k] != v {
					doc[k] = v
					modified = 1
				}
			}
			return 1, modified, nil
		}
	}
	return 0, 0, nil
}

func (s *stubStore) DeleteByID(_ context.Context, collection, id string) (int64, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}
	if !validID(id) {
		return 0, domain.ErrInvalidID
	}
	for i, doc := range s.docs[collection] {
		if doc["_id"] == id {
			s.docs[collection] = append(s.docs[collection][:i], s.docs[collection][i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type stubSink struct {
	events []domain.BookingEvent
}

func (s *stubSink) Enqueue(event domain.BookingEvent) {
	s.events = append(s.events, event)
}

var _ ports.DocumentStore = (*stubStore)(nil)
var _ ports.EventSink = (*stubSink)(nil)

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestBookingService_Create_PassesDocumentThrough(t *testing.T) {
	store := newStubStore()
	sink := &stubSink{}
	svc := NewBookingService(store, sink, zerolog.Nop())

	id, err := svc.Create(context.Background(), domain.Document{
		"email":        "alice@example.com",
		"status":       "pending",
		"custom_field": "kept as-is",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != store.nextID {
		t.Fatalf("expected generated id %s, got %s", store.nextID, id)
	}

	stored := store.docs[domain.CollectionBookings][0]
	if stored["custom_field"] != "kept as-is" {
		t.Fatalf("arbitrary field not passed through: %v", stored)
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Action != domain.ActionCreated || ev.BookingID != id || ev.Email != "alice@example.com" {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
}

func TestBookingService_Create_StoreFailure(t *testing.T) {
	store := newStubStore()
	store.failWith = errors.New("connection reset")
	sink := &stubSink{}
	svc := NewBookingService(store, sink, zerolog.Nop())

	if _, err := svc.Create(context.Background(), domain.Document{"email": "a@b.c"}); err == nil {
		t.Fatalf("expected error")
	}
	if len(sink.events) != 0 {
		t.Fatalf("no audit event expected on failure")
	}
}

func TestBookingService_ListByEmail_OwnerOnly(t *testing.T) {
	store := newStubStore()
	store.docs[domain.CollectionBookings] = []domain.Document{
		{"_id": "64b0c0ffee0000000000000001", "email": "alice@example.com"},
		{"_id": "64b0c0ffee0000000000000002", "email": "bob@example.com"},
		{"_id": "64b0c0ffee0000000000000003", "email": "alice@example.com"},
	}
	svc := NewBookingService(store, &stubSink{}, zerolog.Nop())

	docs, err := svc.ListByEmail(context.Background(), domain.Claims{"email": "alice@example.com"}, "alice@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(docs))
	}
	if store.lastFilter["email"] != "alice@example.com" {
		t.Fatalf("expected email filter, got %v", store.lastFilter)
	}
}

func TestBookingService_ListByEmail_IdentityMismatch(t *testing.T) {
	store := newStubStore()
	store.docs[domain.CollectionBookings] = []domain.Document{
		{"_id": "64b0c0ffee0000000000000001", "email": "alice@example.com"},
	}
	svc := NewBookingService(store, &stubSink{}, zerolog.Nop())

	_, err := svc.ListByEmail(context.Background(), domain.Claims{"email": "mallory@example.com"}, "alice@example.com")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.lastFilter != nil {
		t.Fatalf("store must not be queried on identity mismatch")
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	store := newStubStore()
	store.docs[domain.CollectionBookings] = []domain.Document{
		{"_id": "64b0c0ffee0000000000000001", "email": "alice@example.com", "status": "pending"},
	}
	sink := &stubSink{}
	svc := NewBookingService(store, sink, zerolog.Nop())

	res, err := svc.UpdateStatus(context.Background(), "64b0c0ffee0000000000000001", "done")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if store.docs[domain.CollectionBookings][0]["status"] != "done" {
		t.Fatalf("status not updated")
	}

	if len(sink.events) != 1 || sink.events[0].Action != domain.ActionStatusChanged || sink.events[0].Status != "done" {
		t.Fatalf("unexpected audit events: %+v", sink.events)
	}
}

func TestBookingService_UpdateStatus_AbsentID(t *testing.T) {
	store := newStubStore()
	sink := &stubSink{}
	svc := NewBookingService(store, sink, zerolog.Nop())

	res, err := svc.UpdateStatus(context.Background(), "64b0c0ffee00000000000000ff", "done")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.MatchedCount != 0 || res.ModifiedCount != 0 {
		t.Fatalf("expected zero counts, got %+v", res)
	}
	if len(sink.events) != 0 {
		t.Fatalf("no audit event expected for zero-modified update")
	}
}

func TestBookingService_UpdateStatus_MalformedID(t *testing.T) {
	svc := NewBookingService(newStubStore(), &stubSink{}, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), "not-an-id", "done")
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestBookingService_Delete(t *testing.T) {
	store := newStubStore()
	store.docs[domain.CollectionBookings] = []domain.Document{
		{"_id": "64b0c0ffee0000000000000001", "email": "alice@example.com"},
	}
	sink := &stubSink{}
	svc := NewBookingService(store, sink, zerolog.Nop())

	res, err := svc.Delete(context.Background(), "64b0c0ffee0000000000000001")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.DeletedCount != 1 {
		t.Fatalf("expected 1 deleted, got %+v", res)
	}
	if len(store.docs[domain.CollectionBookings]) != 0 {
		t.Fatalf("document not removed")
	}
	if len(sink.events) != 1 || sink.events[0].Action != domain.ActionDeleted {
		t.Fatalf("unexpected audit events: %+v", sink.events)
	}
}

func TestBookingService_Delete_AbsentID(t *testing.T) {
	sink := &stubSink{}
	svc := NewBookingService(newStubStore(), sink, zerolog.Nop())

	res, err := svc.Delete(context.Background(), "64b0c0ffee00000000000000ff")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.DeletedCount != 0 {
		t.Fatalf("expected zero deleted, got %+v", res)
	}
	if len(sink.events) != 0 {
		t.Fatalf("no audit event expected for zero-deleted")
	}
}
