package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	"github.com/m04kA/AXB-BookingService/internal/integrations/notify"
	"github.com/m04kA/AXB-BookingService/internal/integrations/payments"
	"github.com/m04kA/AXB-BookingService/internal/scheduling"
	"github.com/m04kA/AXB-BookingService/pkg/ptr"
)

// asyncTimeout таймаут для пост-транзакционных интеграций
const asyncTimeout = 10 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	resourceRepo   ResourceRepository
	rulesRepo      RulesRepository
	paymentsClient PaymentsClient
	waiverClient   WaiverClient
	notifyPub      NotifyPublisher
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
	waiverClient WaiverClient,
	notifyPub NotifyPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		resourceRepo:   resourceRepo,
		rulesRepo:      rulesRepo,
		paymentsClient: paymentsClient,
		waiverClient:   waiverClient,
		notifyPub:      notifyPub,
		txManager:      txManager,
		hours:          domain.DefaultVenueHours,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// доступность проверяется и claims записываются атомарно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: activity=%s, partySize=%d, date=%s, startMin=%d",
		req.Activity, req.PartySize, req.Date.Format(domain.DateFormat), req.StartMin)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно работы площадки на дату
	window := uc.hours.WindowFor(req.Date)
	if window.Closed {
		uc.logger.Warn("CreateBooking: venue is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrVenueClosed
	}

	// 3. Запрос планирования; ядро дальше считает данные доверенными
	schedReq := scheduling.Request{
		Activity:               req.Activity,
		PartySize:              req.PartySize,
		DurationMinutes:        req.DurationMinutes,
		AxeDurationMinutes:     req.AxeDurationMinutes,
		DuckpinDurationMinutes: req.DuckpinDurationMinutes,
		AxeFirst:               req.AxeFirst,
		Window:                 window,
		NowMin:                 nowMinuteFor(req.Date, uc.timeProvider.Now()),
		PartyArea:              toPartyAreaSelection(req.PartyArea),
	}

	// 4. Цена считается до платежа и фиксируется в бронировании
	price := scheduling.ComputePrice(schedReq)

	// 5. Для online-оплаты списание выполняется до транзакции;
	// при провале транзакции платёж компенсируется возвратом
	var chargeID *string
	if req.PaymentDisposition == domain.PayOnline {
		charge, err := uc.paymentsClient.CreateCharge(ctx, price, map[string]string{
			"activity":       string(req.Activity),
			"booking_date":   req.Date.Format(domain.DateFormat),
			"customer_phone": req.CustomerPhone,
		})
		if err != nil {
			if errors.Is(err, payments.ErrChargeDeclined) {
				uc.logger.Warn("CreateBooking: charge declined for phone=%s", req.CustomerPhone)
				return nil, ErrPaymentDeclined
			}
			uc.logger.Error("CreateBooking: failed to create charge: %v", err)
			return nil, fmt.Errorf("%w: failed to create charge: %v", ErrInternal, err)
		}
		chargeID = ptr.Ptr(charge.ID)
		uc.logger.Info("CreateBooking: charge %s created, amount=%.2f", charge.ID, price)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка доступности и запись claims в сериализуемой транзакции
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Снапшот площадки; claims на дату читаются с блокировкой FOR UPDATE
		snap, err := uc.loadSnapshot(txCtx, req.Date)
		if err != nil {
			return err
		}

		// 6.2. Планирование выбранного времени старта
		plan, err := scheduling.EvaluateStart(schedReq, snap, req.StartMin)
		if err != nil {
			uc.logger.Warn("CreateBooking: start %d rejected: %v", req.StartMin, err)
			return mapSchedulingError(err)
		}

		// 6.3. Создаем бронирование
		booking := &domain.Booking{
			Activity:           req.Activity,
			PartySize:          req.PartySize,
			BookingDate:        req.Date,
			StartMin:           req.StartMin,
			EndMin:             req.StartMin + schedReq.TotalDuration(),
			DurationMinutes:    schedReq.TotalDuration(),
			AxeFirst:           req.AxeFirst,
			PartyArea:          toPartyAreaSelection(req.PartyArea),
			CustomerName:       req.CustomerName,
			CustomerPhone:      req.CustomerPhone,
			CustomerEmail:      req.CustomerEmail,
			PaymentDisposition: req.PaymentDisposition,
			PaymentChargeID:    chargeID,
			PriceTotal:         price,
			Status:             domain.StatusConfirmed,
			Notes:              req.Notes,
		}
		if req.Activity == domain.ActivityCombo {
			booking.AxeDurationMinutes = ptr.Ptr(req.AxeDurationMinutes)
			booking.DuckpinDurationMinutes = ptr.Ptr(req.DuckpinDurationMinutes)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 6.4. Записываем claim на каждый ресурс плана
		for _, pc := range plan.Claims {
			claim := &domain.ResourceClaim{
				BookingID:   created.ID,
				ResourceID:  pc.ResourceID,
				BookingDate: req.Date,
				StartMin:    pc.StartMin,
				EndMin:      pc.EndMin,
				Segment:     pc.Segment,
			}
			saved, err := uc.bookingRepo.CreateClaim(txCtx, claim)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create claim resource=%d: %v", pc.ResourceID, err)
				return fmt.Errorf("%w: failed to create claim: %v", ErrInternal, err)
			}
			created.Claims = append(created.Claims, *saved)
		}

		result = created
		return nil
	})

	if txErr != nil {
		// Компенсация: бронирование не состоялось, деньги возвращаются
		if chargeID != nil {
			if refundErr := uc.paymentsClient.RefundCharge(ctx, *chargeID); refundErr != nil {
				uc.logger.Error("CreateBooking: failed to refund charge %s: %v", *chargeID, refundErr)
			} else {
				uc.logger.Info("CreateBooking: charge %s refunded", *chargeID)
			}
		}
		return nil, txErr
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f, claims=%d",
		result.ID, result.PriceTotal, len(result.Claims))

	// 7. Уведомления и вейвер — fire-and-forget, ошибки не влияют на бронирование
	uc.notifyConfirmed(result)

	return toResponse(result), nil
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

// notifyConfirmed публикует событие подтверждения и запрашивает ссылку на
// вейвер в фоне. Запросы живут дольше HTTP-запроса клиента, поэтому
// используется отдельный контекст с таймаутом.
func (uc *UseCase) notifyConfirmed(booking *domain.Booking) {
	event := notify.BookingConfirmedEvent{
		BookingID:     booking.ID,
		Activity:      string(booking.Activity),
		PartySize:     booking.PartySize,
		BookingDate:   booking.BookingDate.Format(domain.DateFormat),
		StartMin:      booking.StartMin,
		EndMin:        booking.EndMin,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		CustomerEmail: booking.CustomerEmail,
		PriceTotal:    booking.PriceTotal,
		ConfirmedAt:   booking.CreatedAt.UTC().Format(time.RFC3339),
	}
	if booking.PartyArea != nil {
		event.PartyRooms = booking.PartyArea.Rooms
	}

	bookingID := booking.ID
	email := booking.CustomerEmail

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := uc.notifyPub.PublishBookingConfirmed(ctx, event); err != nil {
			uc.logger.Error("CreateBooking: failed to publish confirmation for booking id=%d: %v", bookingID, err)
		}

		if _, err := uc.waiverClient.CreateSigningLink(ctx, bookingID, email); err != nil {
			uc.logger.Error("CreateBooking: failed to create waiver link for booking id=%d: %v", bookingID, err)
		}
	}()
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
		PaymentChargeID:    booking.PaymentChargeID,
		Status:             booking.Status,
		Notes:              booking.Notes,
		CreatedAt:          booking.CreatedAt,
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
