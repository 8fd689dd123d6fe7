package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
	StatusCompleted BookingStatus = "completed"
)

// PaymentDisposition describes how the booking is paid for
type PaymentDisposition string

const (
	PayOnline      PaymentDisposition = "online"
	PayAtDoor      PaymentDisposition = "at_door"
	PayStaffImport PaymentDisposition = "staff_import"
)

// Booking represents a customer reservation of venue resources
type Booking struct {
	ID        int64
	Activity  ActivityType
	PartySize int

	BookingDate time.Time
	StartMin    int // venue-local minutes from midnight
	EndMin      int // exclusive

	DurationMinutes int // total duration; for combo this is the sum of both segments

	// Combo-only fields
	AxeDurationMinutes     *int
	DuckpinDurationMinutes *int
	AxeFirst               bool

	// Party-area overlay, nil when not requested
	PartyArea *PartyAreaSelection

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	PaymentDisposition PaymentDisposition
	PaymentChargeID    *string // external charge id, set for online payments
	PriceTotal         float64
	Status             BookingStatus
	Notes              *string

	CancellationReason *string
	CancelledAt        *time.Time

	Claims []ResourceClaim

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its resources.
// Cancelled bookings release their claims; completed and no-show bookings
// keep them for the historical record.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed
}

// IsCombo returns true if the booking is a composite (two-segment) activity
func (b *Booking) IsCombo() bool {
	return b.Activity == ActivityCombo
}

// IsBuyout returns true if the party size claims the entire venue
func (b *Booking) IsBuyout() bool {
	return b.PartySize >= BuyoutPartySize
}
