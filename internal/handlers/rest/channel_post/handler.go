package channel_post

import (
	"errors"
	"net/http"

	"battery-delivery/internal/generated/dto"
	"battery-delivery/internal/handlers/rest/converters"
	"battery-delivery/internal/service/channel"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ChannelCreate
	err := httputil.DecodeBody(r, &req)
	if err != nil {
		h.writeError(w, "invalid request body", httputil.DecodeErrorStatus(err))
		return
	}

	// новый канал по умолчанию активен
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := h.service.Create(r.Context(), req.Name, active)
	if err != nil {
		switch {
		case errors.Is(err, channel.ErrValidation):
			h.writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, channel.ErrDuplicateName):
			h.writeError(w, err.Error(), http.StatusConflict)
		default:
			h.log.With(logger.NewField("error", err)).Error("create channel")
			h.writeError(w, "failed to create channel", http.StatusInternalServerError)
		}
		return
	}

	err = httputil.WriteJSON(w, converters.ChannelToDTO(*created), http.StatusCreated)
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
