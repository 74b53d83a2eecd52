package delivery_summary_get

import (
	"errors"
	"net/http"

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

// ServeHTTP отдает comanda заказа обычным текстом для копирования в мессенджер.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "invalid delivery id", http.StatusBadRequest)
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			h.writeError(w, err.Error(), http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("delivery_id", id.String()),
			).Error("get delivery")
			h.writeError(w, "failed to load delivery", http.StatusInternalServerError)
		}
		return
	}

	err = httputil.WriteText(w, delivery.Summary(*found), http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write text response")
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
