package subscription_catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petfit/booking-service/internal/api/handlers"
	"github.com/petfit/booking-service/internal/api/middleware"
	"github.com/petfit/booking-service/internal/service/subscriptions"
	"github.com/petfit/booking-service/internal/service/subscriptions/models"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidSubscriptionID = "некорректный ID подписки"
	msgInvalidTrainerID      = "некорректный ID тренера"
	msgInvalidLocationID     = "некорректный ID локации"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgMissingKeyword        = "не указано ключевое слово поиска"
	msgNotFound              = "подписка не найдена"
	msgDateInPast            = "дата подписки должна быть в будущем"
	msgDateRangeInverted     = "дата окончания раньше даты начала"
	msgDateArity             = "разовое занятие несёт одну дату, курс — диапазон"
	msgTimeRangeInverted     = "время окончания должно быть позже времени начала"
	msgInvalidInput          = "некорректные данные подписки"
)

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// respondServiceError маппит ошибки сервиса подписок на конверт ответа
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
		h.logger.Warn("%s - Subscription not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, subscriptions.ErrDateInPast):
		h.logger.Warn("%s - Date in past", op)
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, subscriptions.ErrDateRangeInverted):
		h.logger.Warn("%s - Date range inverted", op)
		handlers.RespondBadRequest(w, msgDateRangeInverted)

	case errors.Is(err, subscriptions.ErrDateArity):
		h.logger.Warn("%s - Date arity mismatch", op)
		handlers.RespondBadRequest(w, msgDateArity)

	case errors.Is(err, subscriptions.ErrTimeRangeInverted):
		h.logger.Warn("%s - Time range inverted", op)
		handlers.RespondBadRequest(w, msgTimeRangeInverted)

	case errors.Is(err, subscriptions.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}

// HandleCreate POST /api/v1/subscriptions/create
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /subscriptions/create - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToCreateRequest(userID)
	if err != nil {
		h.logger.Warn("POST /subscriptions/create - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "POST /subscriptions/create", err)
		return
	}

	h.logger.Info("POST /subscriptions/create - Subscription created: subscription_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/subscriptions/update/{subscriptionId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /subscriptions/update/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	subscriptionID, err := strconv.ParseInt(vars["subscriptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /subscriptions/update/{id} - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	var req SubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /subscriptions/update/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToUpdateRequest(subscriptionID, userID)
	if err != nil {
		h.logger.Warn("PUT /subscriptions/update/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "PUT /subscriptions/update/{id}", err)
		return
	}

	h.logger.Info("PUT /subscriptions/update/{id} - Subscription updated: subscription_id=%d", subscriptionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetAll GET /api/v1/subscriptions/get-all?isExpired=false
func (h *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	req := &models.FilterRequest{}

	if raw := r.URL.Query().Get("isExpired"); raw != "" {
		isExpired, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /subscriptions/get-all - Invalid isExpired: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		req.IsExpired = &isExpired
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /subscriptions/get-all", err)
		return
	}

	h.logger.Info("GET /subscriptions/get-all - Subscriptions retrieved: count=%d", len(result.Subscriptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/subscriptions/get/{subscriptionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subscriptionID, err := strconv.ParseInt(vars["subscriptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /subscriptions/get/{id} - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	result, err := h.service.GetByID(r.Context(), subscriptionID)
	if err != nil {
		h.respondServiceError(w, "GET /subscriptions/get/{id}", err)
		return
	}

	h.logger.Info("GET /subscriptions/get/{id} - Subscription retrieved: subscription_id=%d", subscriptionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/subscriptions/delete/{subscriptionId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subscriptionID, err := strconv.ParseInt(vars["subscriptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /subscriptions/delete/{id} - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	if err := h.service.Delete(r.Context(), subscriptionID); err != nil {
		h.respondServiceError(w, "DELETE /subscriptions/delete/{id}", err)
		return
	}

	h.logger.Info("DELETE /subscriptions/delete/{id} - Subscription deleted: subscription_id=%d", subscriptionID)
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}

// HandleByTrainer GET /api/v1/subscriptions/by-trainer/{trainerId}?isExpired=false
func (h *Handler) HandleByTrainer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /subscriptions/by-trainer/{id} - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	var isExpired *bool
	if raw := r.URL.Query().Get("isExpired"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /subscriptions/by-trainer/{id} - Invalid isExpired: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		isExpired = &parsed
	}

	result, err := h.service.GetByTrainer(r.Context(), trainerID, isExpired)
	if err != nil {
		h.respondServiceError(w, "GET /subscriptions/by-trainer/{id}", err)
		return
	}

	h.logger.Info("GET /subscriptions/by-trainer/{id} - Subscriptions retrieved: trainer_id=%d, count=%d",
		trainerID, len(result.Subscriptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByLocation GET /api/v1/subscriptions/by-location/{locationId}
func (h *Handler) HandleByLocation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /subscriptions/by-location/{id} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	result, err := h.service.GetByLocation(r.Context(), locationID)
	if err != nil {
		h.respondServiceError(w, "GET /subscriptions/by-location/{id}", err)
		return
	}

	h.logger.Info("GET /subscriptions/by-location/{id} - Subscriptions retrieved: location_id=%d, count=%d",
		locationID, len(result.Subscriptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByDate POST /api/v1/subscriptions/by-date
func (h *Handler) HandleByDate(w http.ResponseWriter, r *http.Request) {
	var req DateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions/by-date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	window, err := req.ToDateWindow()
	if err != nil {
		h.logger.Warn("POST /subscriptions/by-date - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDateWindow(r.Context(), window)
	if err != nil {
		h.respondServiceError(w, "POST /subscriptions/by-date", err)
		return
	}

	h.logger.Info("POST /subscriptions/by-date - Subscriptions retrieved: count=%d", len(result.Subscriptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSearch GET /api/v1/subscriptions/search?keyword=yoga
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		h.logger.Warn("GET /subscriptions/search - Missing keyword")
		handlers.RespondBadRequest(w, msgMissingKeyword)
		return
	}

	result, err := h.service.Search(r.Context(), keyword)
	if err != nil {
		h.respondServiceError(w, "GET /subscriptions/search", err)
		return
	}

	h.logger.Info("GET /subscriptions/search - Subscriptions retrieved: keyword=%q, count=%d",
		keyword, len(result.Subscriptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleFilter POST /api/v1/subscriptions/filter
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	var req models.FilterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions/filter - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.List(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /subscriptions/filter", err)
		return
	}

	h.logger.Info("POST /subscriptions/filter - Subscriptions retrieved: count=%d, total=%d",
		len(result.Subscriptions), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetExpired GET /api/v1/subscriptions/expired
func (h *Handler) HandleGetExpired(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetExpired(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /subscriptions/expired", err)
		return
	}

	h.logger.Info("GET /subscriptions/expired - Subscriptions retrieved: count=%d", len(result.Subscriptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleNearby POST /api/v1/subscriptions/nearby
func (h *Handler) HandleNearby(w http.ResponseWriter, r *http.Request) {
	var req models.NearbyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions/nearby - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GetNearby(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /subscriptions/nearby", err)
		return
	}

	h.logger.Info("POST /subscriptions/nearby - Subscriptions retrieved: lat=%f, lon=%f, count=%d",
		req.Latitude, req.Longitude, len(result.Subscriptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
