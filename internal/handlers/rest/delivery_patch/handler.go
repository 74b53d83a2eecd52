package delivery_patch

import (
	"errors"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "invalid delivery id", http.StatusBadRequest)
		return
	}

	var req dto.DeliveryUpdate
	err = httputil.DecodeBody(r, &req)
	if err != nil {
		h.writeError(w, "invalid request body", httputil.DecodeErrorStatus(err))
		return
	}

	modify, err := converters.DeliveryModifyFromDTO(req)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, modify)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrValidation),
			errors.Is(err, delivery.ErrEmptyUpdate),
			errors.Is(err, delivery.ErrCourierMissing):
			h.writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			h.writeError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, delivery.ErrInvalidTransition):
			h.writeError(w, err.Error(), http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("delivery_id", id.String()),
			).Error("update delivery")
			h.writeError(w, "failed to update delivery", http.StatusInternalServerError)
		}
		return
	}

	err = httputil.WriteJSON(w, converters.DeliveryToDTO(*updated), http.StatusOK)
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
