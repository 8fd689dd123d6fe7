package check_availability

import (
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	getBlockedStarts "github.com/m04kA/AXB-BookingService/internal/usecase/get_blocked_starts"
)

// PartyAreaRequest HTTP модель банкетного overlay
type PartyAreaRequest struct {
	Rooms           []string `json:"rooms"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	Timing          string   `json:"timing"`
}

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Activity  string `json:"activity"`
	PartySize int    `json:"partySize"`
	Date      string `json:"date"` // "2026-03-14"

	DurationMinutes int `json:"durationMinutes,omitempty"`

	AxeDurationMinutes     int  `json:"axeDurationMinutes,omitempty"`
	DuckpinDurationMinutes int  `json:"duckpinDurationMinutes,omitempty"`
	AxeFirst               bool `json:"axeFirst,omitempty"`

	StepMinutes int `json:"stepMinutes,omitempty"`

	PartyArea *PartyAreaRequest `json:"partyArea,omitempty"`

	// Сужение окна дня (например, для частных мероприятий);
	// по умолчанию используются часы работы площадки
	OpenMin  *int `json:"openMin,omitempty"`
	CloseMin *int `json:"closeMin,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Date             string `json:"date"`
	Closed           bool   `json:"closed"`
	OpenMin          int    `json:"openMin,omitempty"`
	CloseMin         int    `json:"closeMin,omitempty"`
	StepMinutes      int    `json:"stepMinutes"`
	BlockedStartMins []int  `json:"blockedStartMins"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*getBlockedStarts.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	step := r.StepMinutes
	if step == 0 {
		step = domain.DefaultSlotStep
	}

	req := &getBlockedStarts.Request{
		Activity:               domain.ActivityType(r.Activity),
		PartySize:              r.PartySize,
		Date:                   date,
		DurationMinutes:        r.DurationMinutes,
		AxeDurationMinutes:     r.AxeDurationMinutes,
		DuckpinDurationMinutes: r.DuckpinDurationMinutes,
		AxeFirst:               r.AxeFirst,
		StepMinutes:            step,
		OpenMinOverride:        r.OpenMin,
		CloseMinOverride:       r.CloseMin,
	}

	if r.PartyArea != nil {
		req.PartyArea = &getBlockedStarts.PartyAreaRequest{
			Rooms:           r.PartyArea.Rooms,
			DurationMinutes: r.PartyArea.DurationMinutes,
			Timing:          domain.OverlayTiming(r.PartyArea.Timing),
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBlockedStarts.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		Closed:           resp.Closed,
		OpenMin:          resp.OpenMin,
		CloseMin:         resp.CloseMin,
		StepMinutes:      resp.StepMinutes,
		BlockedStartMins: resp.BlockedStartMins,
	}
}
