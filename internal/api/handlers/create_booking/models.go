package create_booking

import (
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	createBooking "github.com/m04kA/AXB-BookingService/internal/usecase/create_booking"
)

// PartyAreaRequest HTTP модель банкетного overlay
type PartyAreaRequest struct {
	Rooms           []string `json:"rooms"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	Timing          string   `json:"timing"`
}

// CustomerRequest контактные данные гостя
type CustomerRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Activity  string `json:"activity"`
	PartySize int    `json:"partySize"`

	Date     string `json:"date"` // "2026-03-14"
	StartMin int    `json:"startMin"`

	DurationMinutes int `json:"durationMinutes,omitempty"`

	AxeDurationMinutes     int  `json:"axeDurationMinutes,omitempty"`
	DuckpinDurationMinutes int  `json:"duckpinDurationMinutes,omitempty"`
	AxeFirst               bool `json:"axeFirst,omitempty"`

	PartyArea *PartyAreaRequest `json:"partyArea,omitempty"`

	Customer CustomerRequest `json:"customer"`

	PaymentDisposition string  `json:"paymentDisposition"`
	Notes              *string `json:"notes,omitempty"`
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

	Claims []ClaimResponse `json:"claims"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		Activity:               domain.ActivityType(r.Activity),
		PartySize:              r.PartySize,
		Date:                   date,
		StartMin:               r.StartMin,
		DurationMinutes:        r.DurationMinutes,
		AxeDurationMinutes:     r.AxeDurationMinutes,
		DuckpinDurationMinutes: r.DuckpinDurationMinutes,
		AxeFirst:               r.AxeFirst,
		CustomerName:           r.Customer.Name,
		CustomerPhone:          r.Customer.Phone,
		CustomerEmail:          r.Customer.Email,
		PaymentDisposition:     domain.PaymentDisposition(r.PaymentDisposition),
		Notes:                  r.Notes,
	}

	if r.PartyArea != nil {
		req.PartyArea = &createBooking.PartyAreaRequest{
			Rooms:           r.PartyArea.Rooms,
			DurationMinutes: r.PartyArea.DurationMinutes,
			Timing:          domain.OverlayTiming(r.PartyArea.Timing),
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
		Claims:             make([]ClaimResponse, 0, len(resp.Claims)),
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
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
