package delivery_post

import (
	"errors"
	"net/http"

	"battery-delivery/internal/generated/dto"
	"battery-delivery/internal/handlers/rest/converters"
	"battery-delivery/internal/service/delivery"
	"battery-delivery/pkg/httputil"
	"battery-delivery/pkg/logger"
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

// ServeHTTP создает заказ и сразу отдает comanda, чтобы продавец мог ее скопировать.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.DeliveryCreate
	err := httputil.DecodeBody(r, &req)
	if err != nil {
		h.writeError(w, "invalid request body", httputil.DecodeErrorStatus(err))
		return
	}

	create, err := converters.DeliveryCreateFromDTO(req)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), create)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrValidation):
			h.writeError(w, err.Error(), http.StatusBadRequest)
		default:
			h.log.With(logger.NewField("error", err)).Error("create delivery")
			h.writeError(w, "failed to create delivery", http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryCreated{
		Delivery: converters.DeliveryToDTO(*created),
		Summary:  delivery.Summary(*created),
	}

	err = httputil.WriteJSON(w, response, http.StatusCreated)
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
