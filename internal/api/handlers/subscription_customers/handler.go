package subscription_customers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petfit/booking-service/internal/api/handlers"
)

const (
	msgInvalidSubscriptionID = "некорректный ID подписки"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/subscription-customers/{subscriptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subscriptionID, err := strconv.ParseInt(vars["subscriptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /subscription-customers/{id} - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	result, err := h.service.GetSubscriptionCustomers(r.Context(), subscriptionID)
	if err != nil {
		h.logger.Error("GET /subscription-customers/{id} - Failed to get customers: subscription_id=%d, error=%v",
			subscriptionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /subscription-customers/{id} - Customers retrieved: subscription_id=%d, count=%d",
		subscriptionID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
