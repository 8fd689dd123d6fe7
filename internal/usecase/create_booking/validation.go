package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	switch req.Activity {
	case domain.ActivityAxeThrowing, domain.ActivityDuckpin, domain.ActivityCombo:
	default:
		return fmt.Errorf("%w: unknown activity %q", ErrInvalidInput, req.Activity)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d", ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.StartMin < 0 || req.StartMin >= 24*60 {
		return fmt.Errorf("%w: startMin must be within the day", ErrInvalidInput)
	}

	if req.Activity == domain.ActivityCombo {
		if err := validateSegmentDuration(req.AxeDurationMinutes); err != nil {
			return err
		}
		if err := validateSegmentDuration(req.DuckpinDurationMinutes); err != nil {
			return err
		}
	} else {
		if err := validateDuration(req.DurationMinutes); err != nil {
			return err
		}
	}

	if req.PartyArea != nil {
		if err := validatePartyArea(req.PartyArea); err != nil {
			return err
		}
	}

	if err := validateCustomer(req); err != nil {
		return err
	}

	switch req.PaymentDisposition {
	case domain.PayOnline, domain.PayAtDoor, domain.PayStaffImport:
	default:
		return fmt.Errorf("%w: unknown payment disposition %q", ErrInvalidInput, req.PaymentDisposition)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateCustomer проверяет контактные данные гостя
func validateCustomer(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" || len(name) > domain.MaxCustomerNameLen {
		return fmt.Errorf("%w: customerName is required and must not exceed %d characters",
			ErrInvalidInput, domain.MaxCustomerNameLen)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.CustomerEmail != nil && !strings.Contains(*req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is malformed", ErrInvalidInput)
	}

	return nil
}

// validateDuration проверяет длительность одиночной активности
func validateDuration(minutes int) error {
	if minutes < domain.MinDurationMinutes || minutes > domain.MaxDurationMinutes ||
		minutes%domain.DurationStepMinutes != 0 {
		return fmt.Errorf("%w: durationMinutes must be %d-%d in %d-minute steps",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes, domain.DurationStepMinutes)
	}
	return nil
}

// validateSegmentDuration проверяет длительность сегмента комбо
func validateSegmentDuration(minutes int) error {
	if minutes < domain.DurationStepMinutes || minutes > domain.MaxDurationMinutes ||
		minutes%domain.DurationStepMinutes != 0 {
		return fmt.Errorf("%w: combo segment duration must be %d-%d in %d-minute steps",
			ErrInvalidInput, domain.DurationStepMinutes, domain.MaxDurationMinutes, domain.DurationStepMinutes)
	}
	return nil
}

// validatePartyArea проверяет запрошенный банкетный overlay
func validatePartyArea(sel *PartyAreaRequest) error {
	if len(sel.Rooms) == 0 {
		return fmt.Errorf("%w: partyArea requires at least one room", ErrInvalidInput)
	}

	switch sel.Timing {
	case domain.OverlayBefore, domain.OverlayDuring, domain.OverlayAfter:
	default:
		return fmt.Errorf("%w: unknown overlay timing %q", ErrInvalidInput, sel.Timing)
	}

	if sel.DurationMinutes == 0 {
		if sel.Timing != domain.OverlayDuring {
			return fmt.Errorf("%w: overlay duration is required for timing %q", ErrInvalidInput, sel.Timing)
		}
		return nil
	}

	if sel.DurationMinutes < domain.MinOverlayMinutes || sel.DurationMinutes > domain.MaxOverlayMinutes ||
		sel.DurationMinutes%domain.OverlayRoundMinutes != 0 {
		return fmt.Errorf("%w: overlay duration must be %d-%d in whole hours",
			ErrInvalidInput, domain.MinOverlayMinutes, domain.MaxOverlayMinutes)
	}

	return nil
}
