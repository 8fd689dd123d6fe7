package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	bookingStorage "github.com/m04kA/AXB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/AXB-BookingService/internal/scheduling"
	"github.com/m04kA/AXB-BookingService/pkg/ptr"
)

// maxRelocationPasses ограничивает итерации выравнивания пар дорожек
const maxRelocationPasses = 4

// UseCase use case для изменения бронирования: перенос, правка состава
// группы или смена статуса
type UseCase struct {
	bookingRepo    BookingRepository
	resourceRepo   ResourceRepository
	rulesRepo      RulesRepository
	paymentsClient PaymentsClient
	txManager      TransactionManager
	hours          domain.VenueHours
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	rulesRepo RulesRepository,
	paymentsClient PaymentsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		resourceRepo:   resourceRepo,
		rulesRepo:      rulesRepo,
		paymentsClient: paymentsClient,
		txManager:      txManager,
		hours:          domain.DefaultVenueHours,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case изменения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Смена статуса и правка расписания — отдельные потоки
	if req.Status != nil {
		return uc.changeStatus(ctx, req)
	}

	return uc.editSchedule(ctx, req)
}

// changeStatus обрабатывает отмену, no-show и завершение бронирования.
// Отмена освобождает claims и открывает возможность выравнивания пар
// дорожек для оставшихся бронирований.
func (uc *UseCase) changeStatus(ctx context.Context, req *Request) (*Response, error) {
	var result *domain.Booking

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		switch *req.Status {
		case domain.StatusCancelled:
			if !booking.CanBeCancelled() {
				uc.logger.Warn("UpdateBooking: booking id=%d in status %s cannot be cancelled",
					booking.ID, booking.Status)
				return ErrInvalidStatusChange
			}

			if err := uc.bookingRepo.Cancel(txCtx, booking.ID, *req.CancellationReason); err != nil {
				uc.logger.Error("UpdateBooking: failed to cancel booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
			}

			// Отменённое бронирование не держит ресурсы
			if err := uc.bookingRepo.DeleteClaimsByBookingID(txCtx, booking.ID); err != nil {
				uc.logger.Error("UpdateBooking: failed to release claims for booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to release claims: %v", ErrInternal, err)
			}

			booking.Status = domain.StatusCancelled
			booking.CancellationReason = req.CancellationReason
			booking.CancelledAt = ptr.Ptr(uc.timeProvider.Now())
			booking.Claims = nil

			// Освободившиеся дорожки могут позволить собрать рассогласованные
			// пары обратно
			if err := uc.repairLanePairs(txCtx, booking.BookingDate); err != nil {
				return err
			}

		case domain.StatusNoShow, domain.StatusCompleted:
			// Закрытие брони допустимо только из confirmed; claims остаются,
			// интервал остаётся занятым в истории дня
			if booking.Status != domain.StatusConfirmed {
				uc.logger.Warn("UpdateBooking: booking id=%d in status %s cannot change to %s",
					booking.ID, booking.Status, *req.Status)
				return ErrInvalidStatusChange
			}

			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, *req.Status); err != nil {
				uc.logger.Error("UpdateBooking: failed to update status for booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}

			booking.Status = *req.Status
		}

		result = booking
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	// Компенсация online-платежа выполняется после фиксации отмены;
	// провал возврата не откатывает отмену, а попадает в лог для ручного
	// разбора
	if result.Status == domain.StatusCancelled &&
		result.PaymentDisposition == domain.PayOnline && result.PaymentChargeID != nil {
		if err := uc.paymentsClient.RefundCharge(ctx, *result.PaymentChargeID); err != nil {
			uc.logger.Error("UpdateBooking: failed to refund charge %s for booking id=%d: %v",
				*result.PaymentChargeID, result.ID, err)
		} else {
			uc.logger.Info("UpdateBooking: charge %s refunded for booking id=%d",
				*result.PaymentChargeID, result.ID)
		}
	}

	uc.logger.Info("UpdateBooking: booking id=%d status changed to %s", result.ID, result.Status)

	return toResponse(result), nil
}

// editSchedule переносит бронирование и/или меняет состав группы.
// Доступность проверяется без учёта собственных claims бронирования,
// затем claims перезаписываются атомарно.
func (uc *UseCase) editSchedule(ctx context.Context, req *Request) (*Response, error) {
	var result *domain.Booking

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if req.hasScheduleChanges() {
			if !booking.CanBeRescheduled() {
				uc.logger.Warn("UpdateBooking: booking id=%d in status %s cannot be edited",
					booking.ID, booking.Status)
				return ErrNotEditable
			}

			if err := uc.applyScheduleChanges(txCtx, booking, req); err != nil {
				return err
			}
		}

		if req.Notes != nil {
			if err := uc.bookingRepo.UpdateNotes(txCtx, booking.ID, req.Notes); err != nil {
				uc.logger.Error("UpdateBooking: failed to update notes for booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to update notes: %v", ErrInternal, err)
			}
			booking.Notes = req.Notes
		}

		result = booking
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Info("UpdateBooking: booking id=%d rescheduled to %s %d-%d, price=%.2f",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.StartMin, result.EndMin, result.PriceTotal)

	return toResponse(result), nil
}

// applyScheduleChanges пересчитывает расписание бронирования внутри
// транзакции и перезаписывает его claims
func (uc *UseCase) applyScheduleChanges(txCtx context.Context, booking *domain.Booking, req *Request) error {
	merged, err := mergeScheduleChanges(booking, req)
	if err != nil {
		return err
	}

	oldDate := booking.BookingDate

	window := uc.hours.WindowFor(merged.BookingDate)
	if window.Closed {
		uc.logger.Warn("UpdateBooking: venue is closed on %s", merged.BookingDate.Format(domain.DateFormat))
		return ErrVenueClosed
	}

	schedReq := scheduling.Request{
		Activity:         merged.Activity,
		PartySize:        merged.PartySize,
		DurationMinutes:  merged.DurationMinutes,
		AxeFirst:         merged.AxeFirst,
		Window:           window,
		NowMin:           nowMinuteFor(merged.BookingDate, uc.timeProvider.Now()),
		PartyArea:        merged.PartyArea,
		ExcludeBookingID: &booking.ID,
	}
	if merged.Activity == domain.ActivityCombo {
		schedReq.AxeDurationMinutes = *merged.AxeDurationMinutes
		schedReq.DuckpinDurationMinutes = *merged.DuckpinDurationMinutes
	}

	snap, err := uc.loadSnapshot(txCtx, merged.BookingDate)
	if err != nil {
		return err
	}

	plan, err := scheduling.EvaluateStart(schedReq, snap, merged.StartMin)
	if err != nil {
		uc.logger.Warn("UpdateBooking: new start %d rejected for booking id=%d: %v",
			merged.StartMin, booking.ID, err)
		return mapSchedulingError(err)
	}

	merged.EndMin = merged.StartMin + schedReq.TotalDuration()
	merged.DurationMinutes = schedReq.TotalDuration()
	merged.PriceTotal = scheduling.ComputePrice(schedReq)

	if err := uc.bookingRepo.UpdateSchedule(txCtx, merged); err != nil {
		if errors.Is(err, bookingStorage.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to update schedule for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
	}

	// Полная перезапись claims: старый набор снимается, новый план
	// записывается целиком
	if err := uc.bookingRepo.DeleteClaimsByBookingID(txCtx, booking.ID); err != nil {
		uc.logger.Error("UpdateBooking: failed to delete claims for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to delete claims: %v", ErrInternal, err)
	}

	merged.Claims = nil
	for _, pc := range plan.Claims {
		claim := &domain.ResourceClaim{
			BookingID:   booking.ID,
			ResourceID:  pc.ResourceID,
			BookingDate: merged.BookingDate,
			StartMin:    pc.StartMin,
			EndMin:      pc.EndMin,
			Segment:     pc.Segment,
		}
		saved, err := uc.bookingRepo.CreateClaim(txCtx, claim)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to create claim resource=%d: %v", pc.ResourceID, err)
			return fmt.Errorf("%w: failed to create claim: %v", ErrInternal, err)
		}
		merged.Claims = append(merged.Claims, *saved)
	}

	*booking = *merged

	// Перенос мог освободить дорожки на обеих датах
	if err := uc.repairLanePairs(txCtx, merged.BookingDate); err != nil {
		return err
	}
	if !sameDay(oldDate, merged.BookingDate) {
		if err := uc.repairLanePairs(txCtx, oldDate); err != nil {
			return err
		}
	}

	return nil
}

// repairLanePairs пытается перенести бронирования с рассогласованных пар
// дорожек на согласованные. Каждый применённый перенос меняет картину
// занятости, поэтому снапшот перечитывается между итерациями.
func (uc *UseCase) repairLanePairs(txCtx context.Context, date time.Time) error {
	for pass := 0; pass < maxRelocationPasses; pass++ {
		snap, err := uc.loadSnapshot(txCtx, date)
		if err != nil {
			return err
		}

		relocation := findRelocation(snap)
		if relocation == nil {
			return nil
		}

		for i := range relocation.ClaimIDs {
			if err := uc.bookingRepo.UpdateClaimResource(txCtx, relocation.ClaimIDs[i], relocation.LaneIDs[i]); err != nil {
				uc.logger.Error("UpdateBooking: failed to relocate claim id=%d: %v", relocation.ClaimIDs[i], err)
				return fmt.Errorf("%w: failed to relocate claim: %v", ErrInternal, err)
			}
		}

		uc.logger.Info("UpdateBooking: booking id=%d relocated to lane pair %v on %s",
			relocation.BookingID, relocation.LaneIDs, date.Format(domain.DateFormat))
	}

	return nil
}

// findRelocation ищет первое бронирование дня, которому доступен перенос
// на согласованную пару
func findRelocation(snap *scheduling.Snapshot) *scheduling.PairRelocation {
	seen := make(map[int64]bool)
	for _, claim := range snap.Claims {
		if seen[claim.BookingID] {
			continue
		}
		seen[claim.BookingID] = true

		if relocation, ok := scheduling.PlanPairRelocation(snap, claim.BookingID); ok {
			return relocation
		}
	}
	return nil
}

// getBooking загружает бронирование с маппингом ошибки "не найдено"
func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingStorage.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// loadSnapshot собирает снапшот площадки внутри транзакции
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

// mergeScheduleChanges накладывает правки запроса на текущее бронирование.
// Активность тоже можно сменить; применимость полей комбо проверяется
// против итоговой активности, а не исходной.
func mergeScheduleChanges(booking *domain.Booking, req *Request) (*domain.Booking, error) {
	merged := *booking
	merged.Claims = append([]domain.ResourceClaim(nil), booking.Claims...)

	if req.Activity != nil {
		merged.Activity = *req.Activity
	}
	isCombo := merged.Activity == domain.ActivityCombo

	if !isCombo && (req.AxeDurationMinutes != nil || req.DuckpinDurationMinutes != nil || req.AxeFirst != nil) {
		return nil, fmt.Errorf("%w: combo fields are not applicable to %s", ErrInvalidInput, merged.Activity)
	}
	if isCombo && req.DurationMinutes != nil {
		return nil, fmt.Errorf("%w: combo duration is set per segment", ErrInvalidInput)
	}

	if req.Date != nil {
		merged.BookingDate = *req.Date
	}
	if req.StartMin != nil {
		merged.StartMin = *req.StartMin
	}
	if req.DurationMinutes != nil {
		merged.DurationMinutes = *req.DurationMinutes
	}
	if req.AxeDurationMinutes != nil {
		merged.AxeDurationMinutes = req.AxeDurationMinutes
	}
	if req.DuckpinDurationMinutes != nil {
		merged.DuckpinDurationMinutes = req.DuckpinDurationMinutes
	}
	if req.AxeFirst != nil {
		merged.AxeFirst = *req.AxeFirst
	}

	if isCombo {
		// Переход на комбо требует обеих длительностей сегментов
		if merged.AxeDurationMinutes == nil || merged.DuckpinDurationMinutes == nil {
			return nil, fmt.Errorf("%w: combo requires both segment durations", ErrInvalidInput)
		}
	} else {
		// Уход с комбо: суммарная длительность должна укладываться
		// в сетку одиночной активности
		merged.AxeDurationMinutes = nil
		merged.DuckpinDurationMinutes = nil
		merged.AxeFirst = false
		if err := validateDuration(merged.DurationMinutes); err != nil {
			return nil, err
		}
	}
	if req.PartySize != nil {
		merged.PartySize = *req.PartySize
	}
	if req.ClearPartyArea {
		merged.PartyArea = nil
	}
	if req.PartyArea != nil {
		merged.PartyArea = &domain.PartyAreaSelection{
			Rooms:           req.PartyArea.Rooms,
			DurationMinutes: req.PartyArea.DurationMinutes,
			Timing:          req.PartyArea.Timing,
		}
	}

	return &merged, nil
}

// mapSchedulingError переводит ошибки ядра планирования в ошибки usecase
func mapSchedulingError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrVenueClosed):
		return ErrVenueClosed
	case errors.Is(err, scheduling.ErrOutsideHours), errors.Is(err, scheduling.ErrOverlayBeforeOpen):
		return ErrOutsideHours
	case errors.Is(err, scheduling.ErrStartInPast):
		return ErrStartInPast
	case errors.Is(err, scheduling.ErrBlackout):
		return ErrBlackout
	case errors.Is(err, scheduling.ErrInsufficientInventory):
		return ErrInsufficientInventory
	case errors.Is(err, scheduling.ErrSlotTaken):
		return ErrSlotTaken
	case errors.Is(err, scheduling.ErrUnknownRoom):
		return ErrUnknownRoom
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
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

// sameDay сравнивает календарные даты
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// toResponse конвертирует domain модель в response
func toResponse(booking *domain.Booking) *Response {
	resp := &Response{
		ID:                 booking.ID,
		Activity:           booking.Activity,
		PartySize:          booking.PartySize,
		BookingDate:        booking.BookingDate,
		StartMin:           booking.StartMin,
		EndMin:             booking.EndMin,
		DurationMinutes:    booking.DurationMinutes,
		CustomerName:       booking.CustomerName,
		CustomerPhone:      booking.CustomerPhone,
		CustomerEmail:      booking.CustomerEmail,
		PaymentDisposition: booking.PaymentDisposition,
		PriceTotal:         booking.PriceTotal,
		Status:             booking.Status,
		Notes:              booking.Notes,
		CancellationReason: booking.CancellationReason,
		CancelledAt:        booking.CancelledAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	if booking.PartyArea != nil {
		resp.PartyArea = &PartyAreaRequest{
			Rooms:           booking.PartyArea.Rooms,
			DurationMinutes: booking.PartyArea.DurationMinutes,
			Timing:          booking.PartyArea.Timing,
		}
	}

	for _, claim := range booking.Claims {
		resp.Claims = append(resp.Claims, ClaimResponse{
			ResourceID: claim.ResourceID,
			StartMin:   claim.StartMin,
			EndMin:     claim.EndMin,
			Segment:    claim.Segment,
		})
	}

	return resp
}
