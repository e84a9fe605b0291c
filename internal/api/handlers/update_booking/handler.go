package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petfit/booking-service/internal/api/handlers"
	updateManualBooking "github.com/petfit/booking-service/internal/usecase/update_manual_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgBookingNotFound    = "бронирование не найдено"
	msgSlotNotFound       = "временной слот не найден"
	msgConflict           = "грумер уже занят в этом интервале"
	msgHoliday            = "выбранная дата приходится на выходной"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateManualBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateManualBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/booking/update-booking/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /update-booking/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /update-booking/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /update-booking/{id} - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateManualBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /update-booking/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateManualBooking.ErrSlotNotFound):
			h.logger.Warn("PUT /update-booking/{id} - Slot not found: timeslot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, updateManualBooking.ErrConflict):
			h.logger.Warn("PUT /update-booking/{id} - Conflict: booking_id=%d, groomer_id=%d",
				bookingID, req.GroomerID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, updateManualBooking.ErrHoliday):
			h.logger.Warn("PUT /update-booking/{id} - Holiday: booking_id=%d, date=%s",
				bookingID, req.BookingDate)
			handlers.RespondConflict(w, msgHoliday)

		case errors.Is(err, updateManualBooking.ErrInvalidInput):
			h.logger.Warn("PUT /update-booking/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /update-booking/{id} - Failed to update booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /update-booking/{id} - Booking updated: booking_id=%d, groomer_id=%d, timeslot_id=%d",
		bookingID, req.GroomerID, req.TimeSlotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
