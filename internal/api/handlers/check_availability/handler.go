package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/AXB-BookingService/internal/api/handlers"
	getBlockedStarts "github.com/m04kA/AXB-BookingService/internal/usecase/get_blocked_starts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetBlockedStartsUseCase
	logger  Logger
}

func NewHandler(useCase GetBlockedStartsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/check - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getBlockedStarts.ErrInvalidInput), errors.Is(err, getBlockedStarts.ErrInvalidDate):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/check - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - Computed %d blocked starts for %s",
		len(result.BlockedStartMins), req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
