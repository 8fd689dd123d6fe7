package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/AXB-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/AXB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput          = "некорректные параметры бронирования"
	msgVenueClosed           = "площадка закрыта в выбранную дату"
	msgOutsideHours          = "интервал выходит за часы работы площадки"
	msgStartInPast           = "время начала уже прошло"
	msgBlackout              = "интервал пересекается с техническим перерывом"
	msgInsufficientInventory = "ресурсов площадки не хватает для группы такого размера"
	msgSlotTaken             = "выбранное время уже занято"
	msgUnknownRoom           = "запрошенная банкетная комната не существует"
	msgPaymentDeclined       = "платеж отклонен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput), errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrVenueClosed):
			h.logger.Warn("POST /bookings - Venue closed on %s", req.Date)
			handlers.RespondBadRequest(w, msgVenueClosed)

		case errors.Is(err, createBooking.ErrOutsideHours):
			h.logger.Warn("POST /bookings - Outside operating hours: date=%s, startMin=%d", req.Date, req.StartMin)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrStartInPast):
			h.logger.Warn("POST /bookings - Start in past: date=%s, startMin=%d", req.Date, req.StartMin)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrBlackout):
			h.logger.Warn("POST /bookings - Blackout overlap: date=%s, startMin=%d", req.Date, req.StartMin)
			handlers.RespondBadRequest(w, msgBlackout)

		case errors.Is(err, createBooking.ErrUnknownRoom):
			h.logger.Warn("POST /bookings - Unknown party room: %v", err)
			handlers.RespondBadRequest(w, msgUnknownRoom)

		case errors.Is(err, createBooking.ErrInsufficientInventory):
			h.logger.Warn("POST /bookings - Insufficient inventory: activity=%s, partySize=%d",
				req.Activity, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientInventory)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, startMin=%d", req.Date, req.StartMin)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings - Payment declined: phone=%s", req.Customer.Phone)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
