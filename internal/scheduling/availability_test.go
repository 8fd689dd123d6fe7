package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

func TestComputeBlockedStarts_EmptyVenueAllSlotsFree(t *testing.T) {
	// 3 стенда, без бронирований, группа на 10 человек (2 стенда),
	// час игры с шагом 30 минут: весь день свободен
	snap := testSnapshot(3, 0, 0)
	req := axeRequest(10, 60)

	blocked := ComputeBlockedStarts(req, snap)

	assert.Empty(t, blocked)
}

func TestComputeBlockedStarts_ClosedDay(t *testing.T) {
	snap := testSnapshot(3, 0, 0)
	req := axeRequest(4, 60)
	req.Window = domain.OpenWindow{Closed: true}

	blocked := ComputeBlockedStarts(req, snap)

	assert.Empty(t, blocked)
}

func TestEvaluateStart_TwoBaysBusyBlocksTwoBayRequest(t *testing.T) {
	snap := testSnapshot(3, 0, 0)
	snap.Claims = []domain.ResourceClaim{
		claim(1, 1, 1020, 1080),
		claim(1, 2, 1020, 1080),
	}

	// Группе на 10 нужны 2 стенда, свободен только третий
	_, err := EvaluateStart(axeRequest(10, 60), snap, 1020)
	require.ErrorIs(t, err, ErrSlotTaken)

	// Группе на 6 хватает одного стенда
	plan, err := EvaluateStart(axeRequest(6, 60), snap, 1020)
	require.NoError(t, err)
	require.Len(t, plan.Claims, 1)
	assert.Equal(t, int64(3), plan.Claims[0].ResourceID)
}

func TestEvaluateStart_ComboBlockedBySecondSegment(t *testing.T) {
	// Все дорожки заняты на втором часе: комбо с стартом 1020
	// блокируется, хотя стенды свободны весь вечер
	snap := testSnapshot(3, 4, 0)
	for lane := int64(11); lane <= 14; lane++ {
		snap.Claims = append(snap.Claims, claim(7, lane, 1080, 1140))
	}

	req := Request{
		Activity:               domain.ActivityCombo,
		PartySize:              6,
		AxeDurationMinutes:     60,
		DuckpinDurationMinutes: 60,
		AxeFirst:               true,
		StepMinutes:            30,
		Window:                 defaultWindow(),
		NowMin:                 -1,
	}

	_, err := EvaluateStart(req, snap, 1020)
	require.ErrorIs(t, err, ErrSlotTaken)

	// Часом раньше второй сегмент попадает на свободный [1020,1080)
	plan, err := EvaluateStart(req, snap, 960)
	require.NoError(t, err)
	require.Len(t, plan.Claims, 2)
	assert.Equal(t, domain.SegmentFirst, plan.Claims[0].Segment)
	assert.Equal(t, domain.SegmentSecond, plan.Claims[1].Segment)
}

func TestEvaluateStart_OverlayBeforeOpeningRejected(t *testing.T) {
	snap := testSnapshot(3, 0, 2)

	req := axeRequest(6, 60)
	req.PartyArea = &domain.PartyAreaSelection{
		Rooms:           []string{"Party Room A"},
		DurationMinutes: 60,
		Timing:          domain.OverlayBefore,
	}

	// Основное окно [1020,1080): overlay [960,1020) помещается в день
	plan, err := EvaluateStart(req, snap, 1020)
	require.NoError(t, err)
	require.Len(t, plan.Claims, 2)
	overlay := plan.Claims[1]
	assert.Equal(t, domain.SegmentOverlay, overlay.Segment)
	assert.Equal(t, 960, overlay.StartMin)
	assert.Equal(t, 1020, overlay.EndMin)

	// Со стартом 990 overlay потребовал бы [930,990) до открытия
	_, err = EvaluateStart(req, snap, 990)
	require.ErrorIs(t, err, ErrOverlayBeforeOpen)
}

func TestEvaluateStart_BuyoutBlockedByAnyClaim(t *testing.T) {
	snap := testSnapshot(4, 4, 2)
	// Единственный claim: одна дорожка на полчаса внутри окна
	snap.Claims = []domain.ResourceClaim{claim(3, 11, 1050, 1080)}

	req := axeRequest(domain.BuyoutPartySize, 120)

	_, err := EvaluateStart(req, snap, 1020)
	require.ErrorIs(t, err, ErrSlotTaken)

	// После освобождения дорожки buyout занимает весь инвентарь
	snap.Claims = nil
	plan, err := EvaluateStart(req, snap, 1020)
	require.NoError(t, err)
	assert.Len(t, plan.Claims, 10) // 4 стенда + 4 дорожки + 2 комнаты
}

func TestEvaluateStart_BuyoutOverlayTailClaimed(t *testing.T) {
	snap := testSnapshot(2, 2, 1)

	req := axeRequest(domain.BuyoutPartySize, 120)
	req.PartyArea = &domain.PartyAreaSelection{
		Rooms:           []string{"Party Room A"},
		DurationMinutes: 240,
		Timing:          domain.OverlayDuring,
	}

	// Buyout держит комнату на основном окне [960,1080); overlay длиннее,
	// его хвост [1080,1200) тоже должен попасть в план
	plan, err := EvaluateStart(req, snap, 960)
	require.NoError(t, err)
	require.Len(t, plan.Claims, 6)
	tail := plan.Claims[len(plan.Claims)-1]
	assert.Equal(t, domain.SegmentOverlay, tail.Segment)
	assert.Equal(t, int64(21), tail.ResourceID)
	assert.Equal(t, 1080, tail.StartMin)
	assert.Equal(t, 1200, tail.EndMin)

	// Overlay без явной длительности совпадает с основным окном:
	// хвоста нет, комната занята обычным buyout-claim
	req.PartyArea.DurationMinutes = 0
	plan, err = EvaluateStart(req, snap, 960)
	require.NoError(t, err)
	assert.Len(t, plan.Claims, 5)

	// Чужой claim комнаты после основного окна блокирует хвост
	req.PartyArea.DurationMinutes = 240
	snap.Claims = []domain.ResourceClaim{claim(7, 21, 1140, 1200)}
	_, err = EvaluateStart(req, snap, 960)
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestEvaluateStart_BlackoutOverlapsPaddedInterval(t *testing.T) {
	snap := testSnapshot(3, 0, 0)
	snap.Blackouts = []domain.BlackoutRule{{
		StartMin: 1140,
		EndMin:   1200,
	}}
	snap.Buffers = []domain.BufferRule{{
		AfterMinutes: 15,
	}}

	// Сырой интервал [1080,1140) не пересекает blackout, но буфер после
	// игры добавляет 15 минут
	_, err := EvaluateStart(axeRequest(4, 60), snap, 1080)
	require.ErrorIs(t, err, ErrBlackout)

	// Без буфера тот же старт проходит
	snap.Buffers = nil
	_, err = EvaluateStart(axeRequest(4, 60), snap, 1080)
	require.NoError(t, err)
}

func TestEvaluateStart_BlackoutForOtherActivityIgnored(t *testing.T) {
	duckpin := domain.ActivityDuckpin
	snap := testSnapshot(3, 0, 0)
	snap.Blackouts = []domain.BlackoutRule{{
		Activity: &duckpin,
		StartMin: 960,
		EndMin:   1320,
	}}

	_, err := EvaluateStart(axeRequest(4, 60), snap, 1020)
	require.NoError(t, err)
}

func TestEvaluateStart_TodayCutoffBlocksPastStarts(t *testing.T) {
	snap := testSnapshot(3, 0, 0)
	req := axeRequest(4, 60)
	req.NowMin = 1050

	_, err := EvaluateStart(req, snap, 1020)
	require.ErrorIs(t, err, ErrStartInPast)

	_, err = EvaluateStart(req, snap, 1080)
	require.NoError(t, err)
}

func TestEvaluateStart_OutsideHours(t *testing.T) {
	snap := testSnapshot(3, 0, 0)
	req := axeRequest(4, 60)

	_, err := EvaluateStart(req, snap, 930)
	require.ErrorIs(t, err, ErrOutsideHours)

	// Старт в 21:30 с часом игры вышел бы за закрытие
	_, err = EvaluateStart(req, snap, 1290)
	require.ErrorIs(t, err, ErrOutsideHours)
}

func TestEvaluateStart_InsufficientInventory(t *testing.T) {
	// Двух стендов никогда не хватит группе на 20 человек (3 стенда)
	snap := testSnapshot(2, 0, 0)

	_, err := EvaluateStart(axeRequest(20, 60), snap, 1020)
	require.ErrorIs(t, err, ErrInsufficientInventory)

	// И каждый слот дня заблокирован
	blocked := ComputeBlockedStarts(axeRequest(20, 60), snap)
	req := axeRequest(20, 60)
	expected := 0
	for m := req.Window.OpenMin; m+60 <= req.Window.CloseMin; m += req.StepMinutes {
		expected++
	}
	assert.Len(t, blocked, expected)
}

func TestComputeBlockedStarts_MonotonicInCapacity(t *testing.T) {
	req := axeRequest(10, 60)

	full := testSnapshot(3, 0, 0)
	reduced := testSnapshot(2, 0, 0)
	busy := []domain.ResourceClaim{
		claim(1, 1, 1020, 1080),
		claim(2, 2, 1140, 1200),
	}
	full.Claims = busy
	reduced.Claims = busy

	blockedFull := ComputeBlockedStarts(req, full)
	blockedReduced := ComputeBlockedStarts(req, reduced)

	// Сокращение инвентаря может только добавлять блокировки
	for _, m := range blockedFull {
		assert.Contains(t, blockedReduced, m)
	}
	assert.GreaterOrEqual(t, len(blockedReduced), len(blockedFull))
}

func TestComputeBlockedStarts_Idempotent(t *testing.T) {
	snap := testSnapshot(3, 4, 2)
	snap.Claims = []domain.ResourceClaim{
		claim(1, 1, 1020, 1080),
		claim(1, 2, 1020, 1080),
		claim(2, 11, 960, 1080),
	}
	req := axeRequest(10, 90)

	first := ComputeBlockedStarts(req, snap)
	second := ComputeBlockedStarts(req, snap)

	assert.Equal(t, first, second)
}

func TestEvaluateStart_PlanNeverPartial(t *testing.T) {
	// Количество claims плана всегда равно требуемому числу ресурсов
	// плюс по одному на каждую банкетную комнату
	snap := testSnapshot(4, 4, 2)
	req := axeRequest(16, 60) // 2 стенда
	req.PartyArea = &domain.PartyAreaSelection{
		Rooms:  []string{"Party Room A", "Party Room B"},
		Timing: domain.OverlayDuring,
	}

	plan, err := EvaluateStart(req, snap, 1020)
	require.NoError(t, err)
	assert.Len(t, plan.Claims, 4)
}

func TestEvaluateStart_ExcludeBookingIgnoresOwnClaims(t *testing.T) {
	snap := testSnapshot(3, 0, 0)
	snap.Claims = []domain.ResourceClaim{
		claim(5, 1, 1020, 1080),
		claim(5, 2, 1020, 1080),
	}

	req := axeRequest(10, 60)
	bookingID := int64(5)
	req.ExcludeBookingID = &bookingID

	// Перенос той же брони на то же время не конфликтует сам с собой
	_, err := EvaluateStart(req, snap, 1020)
	require.NoError(t, err)
}

func TestBufferFor_MaxAcrossApplicableRules(t *testing.T) {
	axe := domain.ActivityAxeThrowing
	duckpin := domain.ActivityDuckpin
	buffers := []domain.BufferRule{
		{Activity: nil, BeforeMinutes: 5, AfterMinutes: 10},
		{Activity: &axe, BeforeMinutes: 0, AfterMinutes: 15},
		{Activity: &duckpin, BeforeMinutes: 30, AfterMinutes: 30},
	}

	before, after := BufferFor(domain.ActivityAxeThrowing, buffers)
	assert.Equal(t, 5, before)
	assert.Equal(t, 15, after)
}
