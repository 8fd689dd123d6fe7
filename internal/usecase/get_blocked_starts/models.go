package get_blocked_starts

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

// Request модель запроса заблокированных времён старта
type Request struct {
	Activity  domain.ActivityType
	PartySize int
	Date      time.Time

	DurationMinutes int // одиночная активность

	// Комбо
	AxeDurationMinutes     int
	DuckpinDurationMinutes int
	AxeFirst               bool

	StepMinutes int

	PartyArea *PartyAreaRequest

	// Опциональное сужение окна (например, для частных мероприятий);
	// по умолчанию используются часы работы площадки
	OpenMinOverride  *int
	CloseMinOverride *int
}

// Response список заблокированных минут дня.
// Отсутствие минуты в списке означает, что слот можно бронировать.
type Response struct {
	Date             time.Time
	Closed           bool
	OpenMin          int
	CloseMin         int
	StepMinutes      int
	BlockedStartMins []int
}
