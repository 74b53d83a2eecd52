package report_get

import (
	"errors"
	"net/http"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/handlers/rest/converters"
	"battery-delivery/internal/service/report"
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
	period := entities.ReportPeriod(r.URL.Query().Get("period"))

	res, err := h.service.Build(period)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidPeriod):
			h.writeError(w, err.Error(), http.StatusBadRequest)
		default:
			h.log.With(logger.NewField("error", err)).Error("build report")
			h.writeError(w, "failed to build report", http.StatusInternalServerError)
		}
		return
	}

	err = httputil.WriteJSON(w, converters.ReportToDTO(*res), http.StatusOK)
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
