package channel_delete

import (
	"errors"
	"net/http"

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

	err = h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, channel.ErrChannelNotFound):
			h.writeError(w, err.Error(), http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("channel_id", id.String()),
			).Error("delete channel")
			h.writeError(w, "failed to delete channel", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	err := httputil.WriteError(w, message, code)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
