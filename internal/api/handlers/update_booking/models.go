package update_booking

import (
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	updateBooking "github.com/m04kA/AXB-BookingService/internal/usecase/update_booking"
)

// PartyAreaRequest HTTP модель банкетного overlay
type PartyAreaRequest struct {
	Rooms           []string `json:"rooms"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	Timing          string   `json:"timing"`
}

// UpdateBookingRequest HTTP request model.
// nil-поля остаются без изменений.
type UpdateBookingRequest struct {
	Status             *string `json:"status,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`

	Activity        *string `json:"activity,omitempty"`
	Date            *string `json:"date,omitempty"` // "2026-03-14"
	StartMin        *int    `json:"startMin,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`

	AxeDurationMinutes     *int  `json:"axeDurationMinutes,omitempty"`
	DuckpinDurationMinutes *int  `json:"duckpinDurationMinutes,omitempty"`
	AxeFirst               *bool `json:"axeFirst,omitempty"`

	PartySize *int `json:"partySize,omitempty"`

	PartyArea      *PartyAreaRequest `json:"partyArea,omitempty"`
	ClearPartyArea bool              `json:"clearPartyArea,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// ClaimResponse занятый ресурс в составе бронирования
type ClaimResponse struct {
	ResourceID int64  `json:"resourceId"`
	StartMin   int    `json:"startMin"`
	EndMin     int    `json:"endMin"`
	Segment    string `json:"segment"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Activity  string `json:"activity"`
	PartySize int    `json:"partySize"`

	BookingDate string `json:"bookingDate"`
	StartMin    int    `json:"startMin"`
	EndMin      int    `json:"endMin"`

	DurationMinutes int `json:"durationMinutes"`

	PartyArea *PartyAreaRequest `json:"partyArea,omitempty"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	PaymentDisposition string  `json:"paymentDisposition"`
	PriceTotal         float64 `json:"priceTotal"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	Claims []ClaimResponse `json:"claims"`

	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID:              bookingID,
		CancellationReason:     r.CancellationReason,
		StartMin:               r.StartMin,
		DurationMinutes:        r.DurationMinutes,
		AxeDurationMinutes:     r.AxeDurationMinutes,
		DuckpinDurationMinutes: r.DuckpinDurationMinutes,
		AxeFirst:               r.AxeFirst,
		PartySize:              r.PartySize,
		ClearPartyArea:         r.ClearPartyArea,
		Notes:                  r.Notes,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.Status = &status
	}

	if r.Activity != nil {
		activity := domain.ActivityType(*r.Activity)
		req.Activity = &activity
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.PartyArea != nil {
		req.PartyArea = &updateBooking.PartyAreaRequest{
			Rooms:           r.PartyArea.Rooms,
			DurationMinutes: r.PartyArea.DurationMinutes,
			Timing:          domain.OverlayTiming(r.PartyArea.Timing),
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:                 resp.ID,
		Activity:           string(resp.Activity),
		PartySize:          resp.PartySize,
		BookingDate:        resp.BookingDate.Format(domain.DateFormat),
		StartMin:           resp.StartMin,
		EndMin:             resp.EndMin,
		DurationMinutes:    resp.DurationMinutes,
		CustomerName:       resp.CustomerName,
		CustomerPhone:      resp.CustomerPhone,
		CustomerEmail:      resp.CustomerEmail,
		PaymentDisposition: string(resp.PaymentDisposition),
		PriceTotal:         resp.PriceTotal,
		Status:             string(resp.Status),
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		Claims:             make([]ClaimResponse, 0, len(resp.Claims)),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CancelledAt != nil {
		cancelled := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelled
	}

	if resp.PartyArea != nil {
		out.PartyArea = &PartyAreaRequest{
			Rooms:           resp.PartyArea.Rooms,
			DurationMinutes: resp.PartyArea.DurationMinutes,
			Timing:          string(resp.PartyArea.Timing),
		}
	}

	for _, claim := range resp.Claims {
		out.Claims = append(out.Claims, ClaimResponse{
			ResourceID: claim.ResourceID,
			StartMin:   claim.StartMin,
			EndMin:     claim.EndMin,
			Segment:    string(claim.Segment),
		})
	}

	return out
}
