package models

import (
	"fmt"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// Response модели

// ClaimResponse занятый ресурс в составе бронирования
type ClaimResponse struct {
	ResourceID   int64  `json:"resourceId"`
	ResourceName string `json:"resourceName,omitempty"`
	StartMin     int    `json:"startMin"`
	EndMin       int    `json:"endMin"`
	StartTime    string `json:"startTime"` // "17:30"
	EndTime      string `json:"endTime"`
	Segment      string `json:"segment"`
}

// PartyAreaResponse банкетный overlay бронирования
type PartyAreaResponse struct {
	Rooms           []string `json:"rooms"`
	DurationMinutes int      `json:"durationMinutes"`
	Timing          string   `json:"timing"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Activity  string `json:"activity"`
	PartySize int    `json:"partySize"`

	BookingDate string `json:"bookingDate"` // "2026-03-14"
	StartMin    int    `json:"startMin"`
	EndMin      int    `json:"endMin"`
	StartTime   string `json:"startTime"` // "17:30"
	EndTime     string `json:"endTime"`

	DurationMinutes int `json:"durationMinutes"`

	AxeDurationMinutes     *int `json:"axeDurationMinutes,omitempty"`
	DuckpinDurationMinutes *int `json:"duckpinDurationMinutes,omitempty"`
	AxeFirst               bool `json:"axeFirst,omitempty"`

	PartyArea *PartyAreaResponse `json:"partyArea,omitempty"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	PaymentDisposition string  `json:"paymentDisposition"`
	PriceTotal         float64 `json:"priceTotal"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	Claims []ClaimResponse `json:"claims,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// ResourceResponse ресурс площадки
type ResourceResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Active       bool   `json:"active"`
	SortPosition int    `json:"sortPosition"`
}

// DayScheduleResponse день площадки для стойки персонала
type DayScheduleResponse struct {
	Date      string             `json:"date"`
	Closed    bool               `json:"closed"`
	OpenMin   int                `json:"openMin,omitempty"`
	CloseMin  int                `json:"closeMin,omitempty"`
	Resources []ResourceResponse `json:"resources"`
	Bookings  []BookingResponse  `json:"bookings"`
}

// FormatClock рендерит минуты от полуночи как "HH:MM".
// 24:00 допустимо как конец суток.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(booking *domain.Booking, resourceNames map[int64]string) *BookingResponse {
	resp := &BookingResponse{
		ID:                     booking.ID,
		Activity:               string(booking.Activity),
		PartySize:              booking.PartySize,
		BookingDate:            booking.BookingDate.Format(domain.DateFormat),
		StartMin:               booking.StartMin,
		EndMin:                 booking.EndMin,
		StartTime:              FormatClock(booking.StartMin),
		EndTime:                FormatClock(booking.EndMin),
		DurationMinutes:        booking.DurationMinutes,
		AxeDurationMinutes:     booking.AxeDurationMinutes,
		DuckpinDurationMinutes: booking.DuckpinDurationMinutes,
		AxeFirst:               booking.AxeFirst,
		CustomerName:           booking.CustomerName,
		CustomerPhone:          booking.CustomerPhone,
		CustomerEmail:          booking.CustomerEmail,
		PaymentDisposition:     string(booking.PaymentDisposition),
		PriceTotal:             booking.PriceTotal,
		Status:                 string(booking.Status),
		Notes:                  booking.Notes,
		CancellationReason:     booking.CancellationReason,
		CreatedAt:              booking.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:              booking.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if booking.CancelledAt != nil {
		cancelled := booking.CancelledAt.Format("2006-01-02T15:04:05Z07:00")
		resp.CancelledAt = &cancelled
	}

	if booking.PartyArea != nil {
		resp.PartyArea = &PartyAreaResponse{
			Rooms:           booking.PartyArea.Rooms,
			DurationMinutes: booking.PartyArea.DurationMinutes,
			Timing:          string(booking.PartyArea.Timing),
		}
	}

	for _, claim := range booking.Claims {
		resp.Claims = append(resp.Claims, ClaimResponse{
			ResourceID:   claim.ResourceID,
			ResourceName: resourceNames[claim.ResourceID],
			StartMin:     claim.StartMin,
			EndMin:       claim.EndMin,
			StartTime:    FormatClock(claim.StartMin),
			EndTime:      FormatClock(claim.EndMin),
			Segment:      string(claim.Segment),
		})
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований в response
func FromDomainBookingList(bookings []*domain.Booking, resourceNames map[int64]string) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(booking, resourceNames))
	}
	resp.Total = len(resp.Bookings)
	return resp
}

// FromDomainResource конвертирует ресурс в response
func FromDomainResource(resource domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:           resource.ID,
		Name:         resource.Name,
		Type:         string(resource.Type),
		Active:       resource.Active,
		SortPosition: resource.SortPosition,
	}
}
