package available_timeslots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/petfit/booking-service/internal/api/handlers"
	"github.com/petfit/booking-service/internal/domain"
	getAvailableTimeslots "github.com/petfit/booking-service/internal/usecase/get_available_timeslots"
)

const (
	msgInvalidGroomerID = "некорректный ID грумера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные данные запроса"
)

type Handler struct {
	useCase GetAvailableTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/available-timeslots?groomerId=1&date=2026-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groomerID, err := strconv.ParseInt(r.URL.Query().Get("groomerId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-timeslots - Invalid groomer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroomerID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-timeslots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimeslots.Request{
		GroomerID: groomerID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimeslots.ErrInvalidInput):
			h.logger.Warn("GET /available-timeslots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-timeslots - Failed to get slots: groomer_id=%d, error=%v",
				groomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-timeslots - Slots retrieved: groomer_id=%d, count=%d",
		groomerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
