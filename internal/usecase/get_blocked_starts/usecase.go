package get_blocked_starts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	"github.com/m04kA/AXB-BookingService/internal/scheduling"
)

// UseCase use case расчёта заблокированных времён старта.
// Выдача только подсказка для интерфейса: единственный источник истины
// о доступности — транзакция бронирования.
type UseCase struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	rulesRepo    RulesRepository
	hours        domain.VenueHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	rulesRepo RulesRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		rulesRepo:    rulesRepo,
		hours:        domain.DefaultVenueHours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчёта заблокированных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBlockedStarts: activity=%s, partySize=%d, date=%s, step=%d",
		req.Activity, req.PartySize, req.Date.Format(domain.DateFormat), req.StepMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBlockedStarts: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно работы площадки на дату (часы работы либо явные границы запроса)
	window := uc.hours.WindowFor(req.Date)
	if req.OpenMinOverride != nil {
		window.OpenMin = *req.OpenMinOverride
	}
	if req.CloseMinOverride != nil {
		window.CloseMin = *req.CloseMinOverride
	}

	if window.Closed {
		uc.logger.Info("GetBlockedStarts: venue is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:             req.Date,
			Closed:           true,
			StepMinutes:      req.StepMinutes,
			BlockedStartMins: []int{},
		}, nil
	}

	// 3. Снапшот данных площадки на дату, загружается один раз на запрос
	snap, err := uc.loadSnapshot(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetBlockedStarts: failed to load snapshot: %v", err)
		return nil, err
	}

	// 4. Отсечка по текущему времени для сегодняшней даты;
	// прошедшая дата блокирует все слоты
	nowMin := nowMinuteFor(req.Date, uc.timeProvider.Now())

	// 5. Расчёт заблокированных слотов
	blocked := scheduling.ComputeBlockedStarts(scheduling.Request{
		Activity:               req.Activity,
		PartySize:              req.PartySize,
		DurationMinutes:        req.DurationMinutes,
		AxeDurationMinutes:     req.AxeDurationMinutes,
		DuckpinDurationMinutes: req.DuckpinDurationMinutes,
		AxeFirst:               req.AxeFirst,
		StepMinutes:            req.StepMinutes,
		Window:                 window,
		NowMin:                 nowMin,
		PartyArea:              toPartyAreaSelection(req.PartyArea),
	}, snap)

	uc.logger.Info("GetBlockedStarts: %d of the day's starts blocked for activity=%s, date=%s",
		len(blocked), req.Activity, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:             req.Date,
		OpenMin:          window.OpenMin,
		CloseMin:         window.CloseMin,
		StepMinutes:      req.StepMinutes,
		BlockedStartMins: blocked,
	}, nil
}

// loadSnapshot собирает request-scoped снапшот: ресурсы, claims активных
// бронирований на дату, blackout-окна и буферы. Отсутствие строк правил
// деградирует в "без ограничений", а не в ошибку запроса.
func (uc *UseCase) loadSnapshot(ctx context.Context, date time.Time) (*scheduling.Snapshot, error) {
	resources, err := uc.resourceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load resources: %v", ErrInternal, err)
	}

	claims, err := uc.bookingRepo.GetActiveClaimsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load claims: %v", ErrInternal, err)
	}

	blackouts, err := uc.rulesRepo.ListBlackoutsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load blackout rules: %v", ErrInternal, err)
	}

	buffers, err := uc.rulesRepo.ListBuffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load buffer rules: %v", ErrInternal, err)
	}

	return &scheduling.Snapshot{
		Resources: resources,
		Claims:    claims,
		Blackouts: blackouts,
		Buffers:   buffers,
	}, nil
}

// nowMinuteFor возвращает отсечку минуты дня для запрошенной даты:
// -1 для будущих дат, текущая минута для сегодня, конец суток для прошлого
func nowMinuteFor(date time.Time, now time.Time) int {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return now.Hour()*60 + now.Minute()
	}

	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(y2, m2, d2, 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return 24 * 60
	}

	return -1
}

// toPartyAreaSelection конвертирует запрос overlay в domain модель
func toPartyAreaSelection(sel *PartyAreaRequest) *domain.PartyAreaSelection {
	if sel == nil {
		return nil
	}
	return &domain.PartyAreaSelection{
		Rooms:           sel.Rooms,
		DurationMinutes: sel.DurationMinutes,
		Timing:          sel.Timing,
	}
}
