package create_booking

import (
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// PartyAreaRequest запрошенный банкетный overlay
type PartyAreaRequest struct {
	Rooms           []string
	DurationMinutes int // 0 = длительность основной активности (только для "during")
	Timing          domain.OverlayTiming
}

// Request входные данные для создания бронирования
type Request struct {
	Activity  domain.ActivityType
	PartySize int

	Date     time.Time
	StartMin int // минуты от полуночи локального времени площадки

	DurationMinutes int // одиночная активность

	// Комбо
	AxeDurationMinutes     int
	DuckpinDurationMinutes int
	AxeFirst               bool

	PartyArea *PartyAreaRequest

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	PaymentDisposition domain.PaymentDisposition
	Notes              *string
}

// ClaimResponse занятый ресурс в составе бронирования
type ClaimResponse struct {
	ResourceID int64
	StartMin   int
	EndMin     int
	Segment    domain.ClaimSegment
}

// Response результат создания бронирования
type Response struct {
	ID        int64
	Activity  domain.ActivityType
	PartySize int

	BookingDate time.Time
	StartMin    int
	EndMin      int

	DurationMinutes int

	PartyArea *PartyAreaRequest

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	PaymentDisposition domain.PaymentDisposition
	PriceTotal         float64
	PaymentChargeID    *string
	Status             domain.BookingStatus
	Notes              *string

	Claims []ClaimResponse

	CreatedAt time.Time
}
