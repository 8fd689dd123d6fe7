package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "17:30", FormatClock(1050))
	assert.Equal(t, "24:00", FormatClock(1440))
}

func TestFromDomainBooking(t *testing.T) {
	booking := &domain.Booking{
		ID:          7,
		Activity:    domain.ActivityAxeThrowing,
		PartySize:   6,
		BookingDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		StartMin:    1020,
		EndMin:      1080,

		DurationMinutes:    60,
		CustomerName:       "Анна Смирнова",
		CustomerPhone:      "+79001234567",
		PaymentDisposition: domain.PayAtDoor,
		PriceTotal:         168,
		Status:             domain.StatusConfirmed,
		Claims: []domain.ResourceClaim{
			{ID: 1, BookingID: 7, ResourceID: 2, StartMin: 1020, EndMin: 1080, Segment: domain.SegmentMain},
		},
	}

	resp := FromDomainBooking(booking, map[int64]string{2: "Bay 2"})

	assert.Equal(t, "2026-09-04", resp.BookingDate)
	assert.Equal(t, "17:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
	assert.Equal(t, "axe_throwing", resp.Activity)
	require.Len(t, resp.Claims, 1)
	assert.Equal(t, "Bay 2", resp.Claims[0].ResourceName)
	assert.Equal(t, "main", resp.Claims[0].Segment)
}
