package cancel_subscribe

import (
	"errors"
	"net/http"

	"github.com/petfit/booking-service/internal/api/handlers"
	cancelSubscribe "github.com/petfit/booking-service/internal/usecase/cancel_subscribe"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAlreadyCancelled   = "бронирование уже отменено"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CancelSubscribeUseCase
	logger  Logger
}

func NewHandler(useCase CancelSubscribeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/cancel-subscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelSubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cancel-subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelSubscribe.Request{
		BookingID: req.BookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelSubscribe.ErrBookingNotFound):
			h.logger.Warn("POST /cancel-subscribe - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelSubscribe.ErrAlreadyCancelled):
			h.logger.Warn("POST /cancel-subscribe - Already cancelled: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, cancelSubscribe.ErrInvalidInput):
			h.logger.Warn("POST /cancel-subscribe - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cancel-subscribe - Failed to cancel booking: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cancel-subscribe - Booking cancelled: booking_id=%d", req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
