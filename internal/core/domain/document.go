package domain

// Collection names used by the document store.
const (
	CollectionServices      = "services"
	CollectionBookings      = "bookings"
	CollectionBookingEvents = "booking_events"
)

// Document is a schemaless record as stored in and returned by the document
// store. Booking payloads pass through this API unvalidated, so the raw map
// form is the canonical representation.
type Document map[string]any

// Filter is a field-equality query over a collection.
type Filter map[string]any

// ID returns the store-generated key of the document as a string, or "" when
// the document has none.
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}
