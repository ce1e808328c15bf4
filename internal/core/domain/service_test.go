package domain

import "testing"

func TestServiceFromDocument_Projection(t *testing.T) {
	doc := Document{
		"_id":         "64b0c0ffee0000000000000001",
		"title":       "Engine Repair",
		"img":         "https://cdn/img1.jpg",
		"price":       250.0,
		"description": "dropped by the projection",
	}

	got := ServiceFromDocument(doc)
	want := Service{
		ID:    "64b0c0ffee0000000000000001",
		Title: "Engine Repair",
		Img:   "https://cdn/img1.jpg",
		Price: 250.0,
	}
	if got != want {
		t.Fatalf("unexpected projection: %+v", got)
	}
}

// Prices stored as integers (catalog seeded by hand) still project.
func TestServiceFromDocument_IntegerPrice(t *testing.T) {
	if got := ServiceFromDocument(Document{"price": int32(40)}); got.Price != 40 {
		t.Fatalf("int32 price not converted: %v", got.Price)
	}
	if got := ServiceFromDocument(Document{"price": int64(40)}); got.Price != 40 {
		t.Fatalf("int64 price not converted: %v", got.Price)
	}
}

func TestServiceFromDocument_MissingFields(t *testing.T) {
	got := ServiceFromDocument(Document{})
	if got != (Service{}) {
		t.Fatalf("expected zero Service, got %+v", got)
	}
}

func TestClaimsEmail(t *testing.T) {
	if email := (Claims{"email": "alice@example.com"}).Email(); email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", email)
	}
	if email := (Claims{}).Email(); email != "" {
		t.Fatalf("expected empty email, got %s", email)
	}
	if email := (Claims{"email": 42}).Email(); email != "" {
		t.Fatalf("non-string email claim should yield empty, got %s", email)
	}
}
