package delivery_complete_post

import (
	"errors"
	"io"
	"net/http"

	"battery-delivery/internal/generated/dto"
	"battery-delivery/internal/handlers/rest/converters"
	"battery-delivery/internal/service/delivery"
	"battery-delivery/pkg/httputil"
	"battery-delivery/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP завершает доставку. Тело необязательно: без локации доставка
// все равно завершается.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "invalid delivery id", http.StatusBadRequest)
		return
	}

	var req dto.DeliveryComplete
	err = httputil.DecodeBody(r, &req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, "invalid request body", httputil.DecodeErrorStatus(err))
		return
	}

	completed, err := h.service.Complete(r.Context(), id, req.Location)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			h.writeError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, delivery.ErrInvalidTransition):
			h.writeError(w, err.Error(), http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("delivery_id", id.String()),
			).Error("complete delivery")
			h.writeError(w, "failed to complete delivery", http.StatusInternalServerError)
		}
		return
	}

	err = httputil.WriteJSON(w, converters.DeliveryToDTO(*completed), http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	err := httputil.WriteError(w, message, code)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
