package channel_status_post

import (
	"context"
	"errors"
	"net/http"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/generated/dto"
	"battery-delivery/internal/handlers/rest/converters"
	"battery-delivery/internal/service/channel"
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

// ServeHTTP обслуживает /channel/{id}/{action}: activate, deactivate, toggle.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := uuid.Parse(vars["id"])
	if err != nil {
		h.writeError(w, "invalid channel id", http.StatusBadRequest)
		return
	}

	action, ok := h.action(dto.ChangeChannelStatusParamsAction(vars["action"]))
	if !ok {
		h.writeError(w, "unknown channel action", http.StatusBadRequest)
		return
	}

	changed, err := action(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, channel.ErrChannelNotFound):
			h.writeError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, channel.ErrConflict):
			h.writeError(w, channel.ErrConflict.Error(), http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("channel_id", id.String()),
				logger.NewField("action", vars["action"]),
			).Error("change channel status")
			h.writeError(w, "failed to change channel status", http.StatusInternalServerError)
		}
		return
	}

	err = httputil.WriteJSON(w, converters.ChannelToDTO(*changed), http.StatusOK)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) action(
	name dto.ChangeChannelStatusParamsAction,
) (func(ctx context.Context, id uuid.UUID) (*entities.Channel, error), bool) {
	switch name {
	case dto.Activate:
		return h.service.Activate, true
	case dto.Deactivate:
		return h.service.Deactivate, true
	case dto.Toggle:
		return h.service.Toggle, true
	default:
		return nil, false
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
