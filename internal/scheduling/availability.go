package scheduling

import "github.com/m04kA/AXB-BookingService/internal/domain"

// Request полностью разрешённый запрос на планирование.
// Формируется usecase-слоем после валидации; ядро считает данные доверенными.
type Request struct {
	Activity  domain.ActivityType
	PartySize int

	DurationMinutes int // одиночная активность; для комбо игнорируется

	// Комбо
	AxeDurationMinutes     int
	DuckpinDurationMinutes int
	AxeFirst               bool

	StepMinutes int
	Window      domain.OpenWindow

	// Минута текущего дня для сегодняшней даты; -1 для будущих дат.
	// Слоты строго раньше этой минуты исключаются.
	NowMin int

	PartyArea *domain.PartyAreaSelection

	// При переносе бронирования его собственные claims не учитываются
	ExcludeBookingID *int64
}

// TotalDuration общая длительность бронирования в минутах
func (r Request) TotalDuration() int {
	if r.Activity == domain.ActivityCombo {
		return r.AxeDurationMinutes + r.DuckpinDurationMinutes
	}
	return r.DurationMinutes
}

// PlannedClaim один claim, который транзакция бронирования должна записать
type PlannedClaim struct {
	ResourceID int64
	StartMin   int
	EndMin     int
	Segment    domain.ClaimSegment
}

// Plan полный набор claims для бронирования на выбранное время старта
type Plan struct {
	Claims []PlannedClaim
}

// BufferFor возвращает требуемые отступы до и после бронирования активности.
// Из применимых правил берётся максимум; отсутствие правил деградирует в ноль.
func BufferFor(activity domain.ActivityType, buffers []domain.BufferRule) (before, after int) {
	for _, b := range buffers {
		if !b.AppliesTo(activity) {
			continue
		}
		if b.BeforeMinutes > before {
			before = b.BeforeMinutes
		}
		if b.AfterMinutes > after {
			after = b.AfterMinutes
		}
	}
	return before, after
}

// EvaluateStart проверяет одно время старта и строит план аллокации.
// Единственная точка, где вычисляется семантика "занято/свободно":
// её используют и калькулятор доступности, и транзакция бронирования.
func EvaluateStart(req Request, snap *Snapshot, startMin int) (*Plan, error) {
	if req.Window.Closed {
		return nil, ErrVenueClosed
	}

	total := req.TotalDuration()

	if startMin < req.Window.OpenMin || startMin+total > req.Window.CloseMin {
		return nil, ErrOutsideHours
	}

	// Для сегодняшней даты прошедшие слоты недоступны
	if req.NowMin >= 0 && startMin < req.NowMin {
		return nil, ErrStartInPast
	}

	// Интервал с отступами, зажатый в часы работы, проверяется против
	// blackout-окон. Claims существующих бронирований проверяются против
	// сырых интервалов сегментов.
	before, after := BufferFor(req.Activity, snap.Buffers)
	padStart := clamp(startMin-before, req.Window.OpenMin, req.Window.CloseMin)
	padEnd := clamp(startMin+total+after, req.Window.OpenMin, req.Window.CloseMin)

	for _, rule := range snap.Blackouts {
		if rule.AppliesTo(req.Activity) && rule.Overlaps(padStart, padEnd) {
			return nil, ErrBlackout
		}
	}

	requirements := RequiredResources(req.Activity, req.PartySize, snap)

	plan := &Plan{}

	if requirements.Buyout {
		if err := planBuyout(req, snap, startMin, total, plan); err != nil {
			return nil, err
		}
	} else {
		if err := planSegments(req, requirements, snap, startMin, plan); err != nil {
			return nil, err
		}
	}

	if err := planOverlay(req, requirements, snap, startMin, total, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// planBuyout аренда всей площадки: любой существующий claim любого ресурса,
// пересекающийся с полным окном, блокирует слот — даже если по отдельности
// у каждого типа есть запас.
func planBuyout(req Request, snap *Snapshot, startMin, total int, plan *Plan) error {
	for _, c := range snap.Claims {
		if req.ExcludeBookingID != nil && c.BookingID == *req.ExcludeBookingID {
			continue
		}
		if c.Overlaps(startMin, startMin+total) {
			return ErrSlotTaken
		}
	}

	for _, rtype := range []domain.ResourceType{domain.ResourceAxeBay, domain.ResourceDuckpinLane, domain.ResourcePartyRoom} {
		for _, r := range snap.ActiveResources(rtype) {
			plan.Claims = append(plan.Claims, PlannedClaim{
				ResourceID: r.ID,
				StartMin:   startMin,
				EndMin:     startMin + total,
				Segment:    domain.SegmentMain,
			})
		}
	}

	return nil
}

// planSegments аллоцирует каждый сегмент против его собственного типа ресурса
// и его собственного под-интервала
func planSegments(req Request, requirements Requirements, snap *Snapshot, startMin int, plan *Plan) error {
	segments := SegmentsFor(
		req.Activity, startMin, req.DurationMinutes,
		req.AxeDurationMinutes, req.DuckpinDurationMinutes, req.AxeFirst,
	)

	for _, seg := range segments {
		count := requirements.CountFor(seg.ResourceType)
		if count == 0 {
			continue
		}

		resources, err := Allocate(snap, seg.ResourceType, count, seg.StartMin, seg.EndMin, req.ExcludeBookingID)
		if err != nil {
			return err
		}

		for _, r := range resources {
			plan.Claims = append(plan.Claims, PlannedClaim{
				ResourceID: r.ID,
				StartMin:   seg.StartMin,
				EndMin:     seg.EndMin,
				Segment:    seg.Label,
			})
		}
	}

	return nil
}

// planOverlay аллоцирует банкетные комнаты поверх основной активности.
// Overlay не проверяется против blackout-окон и буферов: это чистая добавка.
func planOverlay(req Request, requirements Requirements, snap *Snapshot, startMin, total int, plan *Plan) error {
	sel := req.PartyArea
	if sel == nil || len(sel.Rooms) == 0 {
		return nil
	}

	overlayStart, overlayEnd, err := OverlayInterval(sel, startMin, total, req.Window.OpenMin)
	if err != nil {
		return err
	}

	// При buyout комнаты уже заняты на основном окне; overlay "during"
	// добавляет только хвост, выходящий за его пределы
	if requirements.Buyout && sel.Timing == domain.OverlayDuring {
		if overlayEnd <= startMin+total {
			return nil
		}
		overlayStart = startMin + total
	}

	for _, name := range sel.Rooms {
		room, ok := snap.FindRoom(name)
		if !ok {
			return ErrUnknownRoom
		}
		if !snap.ResourceIsFree(room.ID, overlayStart, overlayEnd, req.ExcludeBookingID) {
			return ErrSlotTaken
		}
		plan.Claims = append(plan.Claims, PlannedClaim{
			ResourceID: room.ID,
			StartMin:   overlayStart,
			EndMin:     overlayEnd,
			Segment:    domain.SegmentOverlay,
		})
	}

	return nil
}

// ComputeBlockedStarts перебирает кандидатные времена старта по сетке шага
// и возвращает заблокированные минуты дня. Отсутствие минуты в списке
// означает, что слот можно бронировать. Вывод детерминирован: повторный
// вызов без записей между ними даёт идентичный результат.
func ComputeBlockedStarts(req Request, snap *Snapshot) []int {
	blocked := make([]int, 0)

	if req.Window.Closed {
		return blocked
	}

	total := req.TotalDuration()

	for m := req.Window.OpenMin; m+total <= req.Window.CloseMin; m += req.StepMinutes {
		if _, err := EvaluateStart(req, snap, m); err != nil {
			blocked = append(blocked, m)
		}
	}

	return blocked
}

// clamp зажимает v в границы [lo, hi]
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
