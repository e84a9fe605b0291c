package subscribe

import (
	"errors"
	"net/http"

	"github.com/petfit/booking-service/internal/api/handlers"
	"github.com/petfit/booking-service/internal/api/middleware"
	subscribeUseCase "github.com/petfit/booking-service/internal/usecase/subscribe"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgSubscriptionNotFound = "подписка не найдена"
	msgSubscriptionExpired  = "срок действия подписки истёк"
	msgAlreadyBooked        = "вы уже забронировали эту подписку"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase SubscribeUseCase
	logger  Logger
}

func NewHandler(useCase SubscribeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/subscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /subscribe - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &subscribeUseCase.Request{
		SubscriptionID: req.SubscriptionID,
		CustomerID:     customerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, subscribeUseCase.ErrSubscriptionNotFound):
			h.logger.Warn("POST /subscribe - Subscription not found: subscription_id=%d", req.SubscriptionID)
			handlers.RespondNotFound(w, msgSubscriptionNotFound)

		case errors.Is(err, subscribeUseCase.ErrSubscriptionExpired):
			h.logger.Warn("POST /subscribe - Subscription expired: subscription_id=%d", req.SubscriptionID)
			handlers.RespondConflict(w, msgSubscriptionExpired)

		case errors.Is(err, subscribeUseCase.ErrAlreadyBooked):
			h.logger.Warn("POST /subscribe - Already booked: subscription_id=%d, customer_id=%d",
				req.SubscriptionID, customerID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, subscribeUseCase.ErrInvalidInput):
			h.logger.Warn("POST /subscribe - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /subscribe - Failed to subscribe: subscription_id=%d, customer_id=%d, error=%v",
				req.SubscriptionID, customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscribe - Subscription booked: booking_id=%d, subscription_id=%d, customer_id=%d",
		result.ID, req.SubscriptionID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
