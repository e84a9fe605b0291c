package create_manual_booking

import (
	"errors"
	"net/http"

	"github.com/petfit/booking-service/internal/api/handlers"
	createManualBooking "github.com/petfit/booking-service/internal/usecase/create_manual_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgSlotNotFound       = "временной слот не найден"
	msgConflict           = "грумер уже занят в этом интервале"
	msgHoliday            = "выбранная дата приходится на выходной"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateManualBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateManualBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/create-manual-booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateManualBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create-manual-booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /create-manual-booking - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createManualBooking.ErrSlotNotFound):
			h.logger.Warn("POST /create-manual-booking - Slot not found: timeslot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createManualBooking.ErrConflict):
			h.logger.Warn("POST /create-manual-booking - Conflict: groomer_id=%d, timeslot_id=%d",
				req.GroomerID, req.TimeSlotID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createManualBooking.ErrHoliday):
			h.logger.Warn("POST /create-manual-booking - Holiday: groomer_id=%d, date=%s",
				req.GroomerID, req.BookingDate)
			handlers.RespondConflict(w, msgHoliday)

		case errors.Is(err, createManualBooking.ErrInvalidInput):
			h.logger.Warn("POST /create-manual-booking - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /create-manual-booking - Failed to create booking: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /create-manual-booking - Booking created: booking_id=%d, customer_id=%d, groomer_id=%d",
		result.ID, req.CustomerID, req.GroomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
