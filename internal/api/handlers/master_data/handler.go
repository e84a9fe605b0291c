package master_data

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petfit/booking-service/internal/api/handlers"
	"github.com/petfit/booking-service/internal/service/masterdata"
	"github.com/petfit/booking-service/internal/service/masterdata/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный ID записи"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "запись не найдена"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	service MasterDataService
	logger  Logger
}

func NewHandler(service MasterDataService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, masterdata.ErrNotFound):
		h.logger.Warn("%s - Record not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, masterdata.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

// HandleCreateCategory POST /api/v1/master/categories
func (h *Handler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /master/categories", err)
		return
	}

	h.logger.Info("POST /master/categories - Category created: category_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGetCategory GET /api/v1/master/categories/{id}
func (h *Handler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /master/categories/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListCategories GET /api/v1/master/categories
func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /master/categories", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateCategory PUT /api/v1/master/categories/{id}
func (h *Handler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /master/categories/{id}", err)
		return
	}

	h.logger.Info("PUT /master/categories/{id} - Category updated: category_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteCategory DELETE /api/v1/master/categories/{id}
func (h *Handler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /master/categories/{id}", err)
		return
	}

	h.logger.Info("DELETE /master/categories/{id} - Category deleted: category_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}

// HandleCreateSessionType POST /api/v1/master/session-types
func (h *Handler) HandleCreateSessionType(w http.ResponseWriter, r *http.Request) {
	var req models.SessionTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateSessionType(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /master/session-types", err)
		return
	}

	h.logger.Info("POST /master/session-types - Session type created: session_type_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGetSessionType GET /api/v1/master/session-types/{id}
func (h *Handler) HandleGetSessionType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetSessionType(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /master/session-types/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListSessionTypes GET /api/v1/master/session-types
func (h *Handler) HandleListSessionTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSessionTypes(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /master/session-types", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateSessionType PUT /api/v1/master/session-types/{id}
func (h *Handler) HandleUpdateSessionType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.SessionTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSessionType(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /master/session-types/{id}", err)
		return
	}

	h.logger.Info("PUT /master/session-types/{id} - Session type updated: session_type_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteSessionType DELETE /api/v1/master/session-types/{id}
func (h *Handler) HandleDeleteSessionType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteSessionType(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /master/session-types/{id}", err)
		return
	}

	h.logger.Info("DELETE /master/session-types/{id} - Session type deleted: session_type_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}

// HandleCreateLocation POST /api/v1/master/locations
func (h *Handler) HandleCreateLocation(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateLocation(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /master/locations", err)
		return
	}

	h.logger.Info("POST /master/locations - Location created: location_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGetLocation GET /api/v1/master/locations/{id}
func (h *Handler) HandleGetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetLocation(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /master/locations/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListLocations GET /api/v1/master/locations
func (h *Handler) HandleListLocations(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListLocations(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /master/locations", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateLocation PUT /api/v1/master/locations/{id}
func (h *Handler) HandleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateLocation(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /master/locations/{id}", err)
		return
	}

	h.logger.Info("PUT /master/locations/{id} - Location updated: location_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteLocation DELETE /api/v1/master/locations/{id}
func (h *Handler) HandleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteLocation(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /master/locations/{id}", err)
		return
	}

	h.logger.Info("DELETE /master/locations/{id} - Location deleted: location_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}

// HandleCreateTaxRate POST /api/v1/master/tax-rates
func (h *Handler) HandleCreateTaxRate(w http.ResponseWriter, r *http.Request) {
	var req models.TaxRateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateTaxRate(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /master/tax-rates", err)
		return
	}

	h.logger.Info("POST /master/tax-rates - Tax rate created: tax_rate_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGetTaxRate GET /api/v1/master/tax-rates/{id}
func (h *Handler) HandleGetTaxRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetTaxRate(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /master/tax-rates/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListTaxRates GET /api/v1/master/tax-rates
func (h *Handler) HandleListTaxRates(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTaxRates(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /master/tax-rates", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateTaxRate PUT /api/v1/master/tax-rates/{id}
func (h *Handler) HandleUpdateTaxRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.TaxRateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateTaxRate(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /master/tax-rates/{id}", err)
		return
	}

	h.logger.Info("PUT /master/tax-rates/{id} - Tax rate updated: tax_rate_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteTaxRate DELETE /api/v1/master/tax-rates/{id}
func (h *Handler) HandleDeleteTaxRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteTaxRate(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /master/tax-rates/{id}", err)
		return
	}

	h.logger.Info("DELETE /master/tax-rates/{id} - Tax rate deleted: tax_rate_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}

// HandleCreateHoliday POST /api/v1/master/holidays
func (h *Handler) HandleCreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req HolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /master/holidays - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateHoliday(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "POST /master/holidays", err)
		return
	}

	h.logger.Info("POST /master/holidays - Holiday created: holiday_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGetHoliday GET /api/v1/master/holidays/{id}
func (h *Handler) HandleGetHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetHoliday(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /master/holidays/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListHolidays GET /api/v1/master/holidays
func (h *Handler) HandleListHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListHolidays(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /master/holidays", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateHoliday PUT /api/v1/master/holidays/{id}
func (h *Handler) HandleUpdateHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req HolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /master/holidays/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.UpdateHoliday(r.Context(), id, serviceReq)
	if err != nil {
		h.respondServiceError(w, "PUT /master/holidays/{id}", err)
		return
	}

	h.logger.Info("PUT /master/holidays/{id} - Holiday updated: holiday_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteHoliday DELETE /api/v1/master/holidays/{id}
func (h *Handler) HandleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteHoliday(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /master/holidays/{id}", err)
		return
	}

	h.logger.Info("DELETE /master/holidays/{id} - Holiday deleted: holiday_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}
