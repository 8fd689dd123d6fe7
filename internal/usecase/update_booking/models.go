package update_booking

import (
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// PartyAreaRequest новый банкетный overlay
type PartyAreaRequest struct {
	Rooms           []string
	DurationMinutes int // 0 = длительность основной активности (только для "during")
	Timing          domain.OverlayTiming
}

// Request входные данные для изменения бронирования.
// Либо смена статуса, либо правка расписания; поля-указатели nil
// означают "оставить как есть".
type Request struct {
	BookingID int64

	// Смена статуса
	Status             *domain.BookingStatus
	CancellationReason *string

	// Правка расписания
	Activity        *domain.ActivityType
	Date            *time.Time
	StartMin        *int
	DurationMinutes *int

	AxeDurationMinutes     *int
	DuckpinDurationMinutes *int
	AxeFirst               *bool

	PartySize *int

	PartyArea      *PartyAreaRequest
	ClearPartyArea bool

	Notes *string
}

// ClaimResponse занятый ресурс в составе бронирования
type ClaimResponse struct {
	ResourceID int64
	StartMin   int
	EndMin     int
	Segment    domain.ClaimSegment
}

// Response обновлённое бронирование
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
	Status             domain.BookingStatus
	Notes              *string

	CancellationReason *string
	CancelledAt        *time.Time

	Claims []ClaimResponse

	UpdatedAt time.Time
}

// hasScheduleChanges сообщает, затрагивает ли запрос расписание или состав группы
func (r *Request) hasScheduleChanges() bool {
	return r.Activity != nil || r.Date != nil || r.StartMin != nil || r.DurationMinutes != nil ||
		r.AxeDurationMinutes != nil || r.DuckpinDurationMinutes != nil ||
		r.AxeFirst != nil || r.PartySize != nil ||
		r.PartyArea != nil || r.ClearPartyArea
}
