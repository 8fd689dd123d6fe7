package domain

// Capacity rules
const (
	AxeBayGroupSize      = 8 // one axe bay per 8 guests, rounded up
	DuckpinLaneGroupSize = 6 // one duckpin lane per 6 guests, rounded up

	BuyoutPartySize = 30 // at or above this size the booking claims the whole venue
	MinPartySize    = 1
	MaxPartySize    = 120
)

// Duration and step validation constants
const (
	MinDurationMinutes   = 60
	MaxDurationMinutes   = 240
	DurationStepMinutes  = 30
	MinOverlayMinutes    = 60
	MaxOverlayMinutes    = 480
	OverlayRoundMinutes  = 60 // overlays are booked in whole hours
	DefaultSlotStep      = 30
	MaxNotesLength       = 500
	MaxCancelReasonLen   = 500
	MaxCustomerNameLen   = 200
)

// AllowedSlotSteps допустимые шаги сетки слотов в минутах
var AllowedSlotSteps = []int{15, 30, 60}

// Pricing
const (
	AxeRatePerGuestHour     = 28.0
	DuckpinRatePerGuestHour = 22.0
	PartyRoomRatePerHour    = 75.0
	BuyoutFlatRate          = 2500.0
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DuckpinLanePairs declares which lanes form a physical pair, by sort
// position. A two-lane booking must land entirely inside one pair.
var DuckpinLanePairs = [][2]int{{1, 2}, {3, 4}}
