package handlers

import (
	"encoding/json"
	"net/http"
)

// ApiResponse единый конверт всех HTTP ответов сервиса
type ApiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

const (
	msgSuccess       = "success"
	msgInternalError = "внутренняя ошибка сервера"
)

// DecodeJSON декодирует тело запроса в указанную структуру
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON отправляет успешный ответ в конверте
func RespondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	writeEnvelope(w, ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    msgSuccess,
		Success:    true,
	})
}

// RespondError отправляет ответ с ошибкой в конверте
func RespondError(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, ApiResponse{
		StatusCode: statusCode,
		Data:       struct{}{},
		Message:    message,
		Success:    false,
	})
}

// RespondBadRequest отправляет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized отправляет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden отправляет 403 Forbidden
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound отправляет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict отправляет 409 Conflict
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отправляет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

func writeEnvelope(w http.ResponseWriter, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	// Ошибку записи клиенту уже не вернуть
	_ = json.NewEncoder(w).Encode(resp)
}
