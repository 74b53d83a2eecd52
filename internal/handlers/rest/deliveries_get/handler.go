package deliveries_get

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

// ServeHTTP отдает кэш доставок. refresh=true сначала перезагружает кэш из хранилища.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter, err := parseFilter(query.Get("status"), query.Get("courier"), query.Get("seller"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if raw := query.Get("refresh"); raw != "" {
		refresh, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, "refresh must be a boolean", http.StatusBadRequest)
			return
		}

		if refresh {
			_, err = h.service.List(r.Context())
			if err != nil {
				h.log.With(logger.NewField("error", err)).Error("reload deliveries")
				h.writeError(w, "failed to load deliveries", http.StatusInternalServerError)
				return
			}
		}
	}

	deliveries := h.service.Cached(filter)

	err = httputil.WriteJSON(w, converters.DeliveriesToDTO(deliveries), http.StatusOK)
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

func parseFilter(status, courier, seller string) (entities.DeliveryFilter, error) {
	var filter entities.DeliveryFilter

	if status != "" {
		s := entities.DeliveryStatus(status)
		if !s.IsValid() {
			return entities.DeliveryFilter{}, errUnknownStatus
		}
		filter.Status = &s
	}
	if courier != "" {
		filter.Courier = &courier
	}
	if seller != "" {
		filter.Seller = &seller
	}
	return filter, nil
}
