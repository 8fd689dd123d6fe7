package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	"github.com/m04kA/AXB-BookingService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		Activity:           domain.ActivityAxeThrowing,
		PartySize:          6,
		Date:               time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		StartMin:           1020,
		DurationMinutes:    60,
		CustomerName:       "Иван Петров",
		CustomerPhone:      "+79001234567",
		PaymentDisposition: domain.PayAtDoor,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *Request) {},
		},
		{
			name:    "unknown activity",
			mutate:  func(r *Request) { r.Activity = "bowling" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "start outside the day",
			mutate:  func(r *Request) { r.StartMin = 24 * 60 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative start",
			mutate:  func(r *Request) { r.StartMin = -30 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing customer name",
			mutate:  func(r *Request) { r.CustomerName = "   " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "customer name too long",
			mutate:  func(r *Request) { r.CustomerName = strings.Repeat("a", domain.MaxCustomerNameLen+1) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing phone",
			mutate:  func(r *Request) { r.CustomerPhone = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed email",
			mutate:  func(r *Request) { r.CustomerEmail = ptr.Ptr("not-an-email") },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown payment disposition",
			mutate:  func(r *Request) { r.PaymentDisposition = "crypto" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "notes too long",
			mutate:  func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("n", domain.MaxNotesLength+1)) },
			wantErr: ErrInvalidInput,
		},
		{
			name: "combo durations validated per segment",
			mutate: func(r *Request) {
				r.Activity = domain.ActivityCombo
				r.AxeDurationMinutes = 60
				r.DuckpinDurationMinutes = 45
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "staff import allowed",
			mutate: func(r *Request) {
				r.PaymentDisposition = domain.PayStaffImport
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
