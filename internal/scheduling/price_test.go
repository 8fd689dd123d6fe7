package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

func TestComputePrice_SingleActivity(t *testing.T) {
	// 6 гостей, 90 минут метания: 6 * 28 * 1.5
	price := ComputePrice(axeRequest(6, 90))
	assert.InDelta(t, 252.0, price, 0.001)
}

func TestComputePrice_Duckpin(t *testing.T) {
	req := axeRequest(4, 60)
	req.Activity = domain.ActivityDuckpin

	price := ComputePrice(req)
	assert.InDelta(t, 88.0, price, 0.001)
}

func TestComputePrice_ComboSumsSegmentRates(t *testing.T) {
	req := Request{
		Activity:               domain.ActivityCombo,
		PartySize:              10,
		AxeDurationMinutes:     60,
		DuckpinDurationMinutes: 60,
		AxeFirst:               true,
		StepMinutes:            30,
		Window:                 defaultWindow(),
		NowMin:                 -1,
	}

	// 10*28*1 + 10*22*1
	price := ComputePrice(req)
	assert.InDelta(t, 500.0, price, 0.001)
}

func TestComputePrice_PartyAreaAddsRoomRate(t *testing.T) {
	req := axeRequest(6, 60)
	req.PartyArea = &domain.PartyAreaSelection{
		Rooms:           []string{"Party Room A", "Party Room B"},
		DurationMinutes: 120,
		Timing:          domain.OverlayAfter,
	}

	// 6*28*1 + 2 комнаты * 75 * 2 часа
	price := ComputePrice(req)
	assert.InDelta(t, 468.0, price, 0.001)
}

func TestComputePrice_OverlayDefaultsToMainDuration(t *testing.T) {
	req := axeRequest(6, 90)
	req.PartyArea = &domain.PartyAreaSelection{
		Rooms:  []string{"Party Room A"},
		Timing: domain.OverlayDuring,
	}

	// 252 + 75 * 1.5
	price := ComputePrice(req)
	assert.InDelta(t, 364.5, price, 0.001)
}

func TestComputePrice_BuyoutFlatRate(t *testing.T) {
	req := axeRequest(domain.BuyoutPartySize, 120)
	req.PartyArea = &domain.PartyAreaSelection{
		Rooms:  []string{"Party Room A"},
		Timing: domain.OverlayDuring,
	}

	// Фиксированная ставка перекрывает и активность, и комнаты
	price := ComputePrice(req)
	assert.InDelta(t, domain.BuyoutFlatRate, price, 0.001)
}
