package get_blocked_starts

import (
	"fmt"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Валидация выполняется один раз на границе; ядро планирования
// считает данные доверенными.
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
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
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

	if !validStep(req.StepMinutes) {
		return fmt.Errorf("%w: stepMinutes must be one of %v", ErrInvalidInput, domain.AllowedSlotSteps)
	}

	if req.PartyArea != nil {
		if err := validatePartyArea(req.PartyArea); err != nil {
			return err
		}
	}

	if req.OpenMinOverride != nil && req.CloseMinOverride != nil &&
		*req.OpenMinOverride >= *req.CloseMinOverride {
		return fmt.Errorf("%w: open window bounds are inverted", ErrInvalidInput)
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

// validateSegmentDuration проверяет длительность сегмента комбо.
// Сегменты короче одиночного минимума допустимы: час топоров плюс час боулинга
// — это два получасовых шага каждый.
func validateSegmentDuration(minutes int) error {
	if minutes < domain.DurationStepMinutes || minutes > domain.MaxDurationMinutes ||
		minutes%domain.DurationStepMinutes != 0 {
		return fmt.Errorf("%w: combo segment duration must be %d-%d in %d-minute steps",
			ErrInvalidInput, domain.DurationStepMinutes, domain.MaxDurationMinutes, domain.DurationStepMinutes)
	}
	return nil
}

// validStep проверяет шаг сетки слотов
func validStep(step int) bool {
	for _, s := range domain.AllowedSlotSteps {
		if step == s {
			return true
		}
	}
	return false
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
		// Длительность по умолчанию допустима только для "during"
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
