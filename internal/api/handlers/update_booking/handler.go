package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AXB-BookingService/internal/api/handlers"
	updateBooking "github.com/m04kA/AXB-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID      = "некорректный ID бронирования"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput          = "некорректные параметры изменения"
	msgNotFound              = "бронирование не найдено"
	msgNotEditable           = "бронирование уже нельзя изменить"
	msgInvalidStatusChange   = "недопустимая смена статуса"
	msgVenueClosed           = "площадка закрыта в выбранную дату"
	msgOutsideHours          = "интервал выходит за часы работы площадки"
	msgStartInPast           = "время начала уже прошло"
	msgBlackout              = "интервал пересекается с техническим перерывом"
	msgInsufficientInventory = "ресурсов площадки не хватает для группы такого размера"
	msgSlotTaken             = "выбранное время уже занято"
	msgUnknownRoom           = "запрошенная банкетная комната не существует"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrNotEditable):
			h.logger.Warn("PATCH /bookings/{id} - Not editable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		case errors.Is(err, updateBooking.ErrInvalidStatusChange):
			h.logger.Warn("PATCH /bookings/{id} - Invalid status change: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidStatusChange)

		case errors.Is(err, updateBooking.ErrVenueClosed):
			h.logger.Warn("PATCH /bookings/{id} - Venue closed: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgVenueClosed)

		case errors.Is(err, updateBooking.ErrOutsideHours):
			h.logger.Warn("PATCH /bookings/{id} - Outside operating hours: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, updateBooking.ErrStartInPast):
			h.logger.Warn("PATCH /bookings/{id} - Start in past: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, updateBooking.ErrBlackout):
			h.logger.Warn("PATCH /bookings/{id} - Blackout overlap: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgBlackout)

		case errors.Is(err, updateBooking.ErrUnknownRoom):
			h.logger.Warn("PATCH /bookings/{id} - Unknown party room: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgUnknownRoom)

		case errors.Is(err, updateBooking.ErrInsufficientInventory):
			h.logger.Warn("PATCH /bookings/{id} - Insufficient inventory: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientInventory)

		case errors.Is(err, updateBooking.ErrSlotTaken):
			h.logger.Warn("PATCH /bookings/{id} - Slot taken: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
