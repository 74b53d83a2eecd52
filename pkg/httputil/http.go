package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

// MaxBodyBytes предел тела запроса. Формы заказа и справочников укладываются с запасом.
const MaxBodyBytes = 1 << 20

// DecodeBody декодирует JSON тело запроса. Неизвестные поля считаются ошибкой клиента,
// тело больше MaxBodyBytes возвращает *http.MaxBytesError.
func DecodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// DecodeErrorStatus 413 для слишком большого тела, иначе 400.
func DecodeErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}

func WriteText(w http.ResponseWriter, text string, code int) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, err := w.Write([]byte(text))
	return err
}
