package confirm_timeslot

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petfit/booking-service/internal/api/handlers"
	"github.com/petfit/booking-service/internal/api/middleware"
	confirmTimeslot "github.com/petfit/booking-service/internal/usecase/confirm_timeslot"
)

const (
	msgInvalidTimeSlotID  = "некорректный ID временного слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotNotFound       = "временной слот не найден"
	msgAlreadyBooked      = "слот уже забронирован"
	msgGroomerMismatch    = "указанный грумер не совпадает с грумером слота"
	msgConflict           = "грумер уже занят в этом интервале"
	msgHoliday            = "выбранная дата приходится на выходной"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase ConfirmTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/confirm-timeslot/{timeslotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	timeslotID, err := strconv.ParseInt(vars["timeslotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /confirm-timeslot/{id} - Invalid timeslot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /confirm-timeslot/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело опционально: слот с привязанным грумером подтверждается без него
	var req ConfirmTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /confirm-timeslot/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmTimeslot.Request{
		TimeSlotID: timeslotID,
		CustomerID: customerID,
		GroomerID:  req.GroomerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmTimeslot.ErrSlotNotFound):
			h.logger.Warn("POST /confirm-timeslot/{id} - Slot not found: timeslot_id=%d", timeslotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, confirmTimeslot.ErrAlreadyBooked):
			h.logger.Warn("POST /confirm-timeslot/{id} - Already booked: timeslot_id=%d", timeslotID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, confirmTimeslot.ErrGroomerMismatch):
			h.logger.Warn("POST /confirm-timeslot/{id} - Groomer mismatch: timeslot_id=%d", timeslotID)
			handlers.RespondBadRequest(w, msgGroomerMismatch)

		case errors.Is(err, confirmTimeslot.ErrConflict):
			h.logger.Warn("POST /confirm-timeslot/{id} - Conflict: timeslot_id=%d", timeslotID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, confirmTimeslot.ErrHoliday):
			h.logger.Warn("POST /confirm-timeslot/{id} - Holiday: timeslot_id=%d", timeslotID)
			handlers.RespondConflict(w, msgHoliday)

		case errors.Is(err, confirmTimeslot.ErrInvalidInput):
			h.logger.Warn("POST /confirm-timeslot/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /confirm-timeslot/{id} - Failed to confirm slot: timeslot_id=%d, error=%v",
				timeslotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /confirm-timeslot/{id} - Slot confirmed: timeslot_id=%d, customer_id=%d, groomer_id=%d",
		timeslotID, customerID, result.GroomerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
