package channels_get

import (
	"net/http"
	"strconv"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/handlers/rest/converters"
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

// ServeHTTP active=true отдает каналы для формы продавца, active=false только выключенные.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		channels []entities.Channel
		err      error
	)

	raw := r.URL.Query().Get("active")
	switch raw {
	case "":
		channels, err = h.service.List(r.Context())
	default:
		active, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			h.writeError(w, "active must be a boolean", http.StatusBadRequest)
			return
		}

		if active {
			channels, err = h.service.ListActive(r.Context())
		} else {
			channels, err = h.service.List(r.Context())
			channels = inactive(channels)
		}
	}
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("list channels")
		h.writeError(w, "failed to load channels", http.StatusInternalServerError)
		return
	}

	err = httputil.WriteJSON(w, converters.ChannelsToDTO(channels), http.StatusOK)
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

func inactive(channels []entities.Channel) []entities.Channel {
	res := make([]entities.Channel, 0, len(channels))
	for _, c := range channels {
		if !c.Active {
			res = append(res, c)
		}
	}
	return res
}
