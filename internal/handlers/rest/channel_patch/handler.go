package channel_patch

import (
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "invalid channel id", http.StatusBadRequest)
		return
	}

	var req dto.ChannelUpdate
	err = httputil.DecodeBody(r, &req)
	if err != nil {
		h.writeError(w, "invalid request body", httputil.DecodeErrorStatus(err))
		return
	}

	updated, err := h.service.Update(r.Context(), id, entities.ChannelModify{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, channel.ErrValidation),
			errors.Is(err, channel.ErrEmptyUpdate):
			h.writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, channel.ErrChannelNotFound):
			h.writeError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, channel.ErrDuplicateName):
			h.writeError(w, err.Error(), http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("channel_id", id.String()),
			).Error("update channel")
			h.writeError(w, "failed to update channel", http.StatusInternalServerError)
		}
		return
	}

	err = httputil.WriteJSON(w, converters.ChannelToDTO(*updated), http.StatusOK)
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
