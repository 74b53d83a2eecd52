package users_get

import (
	"errors"
	"net/http"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/handlers/rest/converters"
	"battery-delivery/internal/service/user"
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

// ServeHTTP без role перечитывает справочник из хранилища, с role отдает срез кэша.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		users []entities.User
		err   error
	)

	role := r.URL.Query().Get("role")
	if role == "" {
		users, err = h.service.List(r.Context())
	} else {
		users, err = h.service.ByRole(entities.UserRole(role))
	}
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUnknownRole):
			h.writeError(w, err.Error(), http.StatusBadRequest)
		default:
			h.log.With(logger.NewField("error", err)).Error("list users")
			h.writeError(w, "failed to load users", http.StatusInternalServerError)
		}
		return
	}

	err = httputil.WriteJSON(w, converters.UsersToDTO(users), http.StatusOK)
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
