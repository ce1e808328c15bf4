package domain

// BookingStatus is the lifecycle state of a booking. The set is open-ended:
// callers may submit any status string, these are merely the values the
// frontend is known to use.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDone      BookingStatus = "done"
)

// BookingEmail extracts the owner email from a raw booking document.
func BookingEmail(doc Document) string {
	email, _ := doc["email"].(string)
	return email
}
