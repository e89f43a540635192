package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http/response"
)

// writeError maps service errors onto HTTP responses. Login failures carry the
// messages the storefront app shows to the user.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		response.ValidationError(w, "Please fix the highlighted fields.", verr.Fields)
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidProductName),
		errors.Is(err, domain.ErrInvalidProductPrice),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrInvalidPassword):
		response.Error(w, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrInvalidEmail):
		response.Message(w, http.StatusBadRequest, "Invalid email address format.")
	case errors.Is(err, domain.ErrUserNotFound):
		response.Message(w, http.StatusUnauthorized, "No account found with this email.")
	case errors.Is(err, domain.ErrWrongPassword):
		response.Message(w, http.StatusUnauthorized, "Incorrect password. Please try again.")
	case errors.Is(err, domain.ErrTooManyAttempts):
		response.Message(w, http.StatusTooManyRequests, "Too many attempts. Try again later.")
	case errors.Is(err, domain.ErrProductNotFound):
		response.Error(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrProductOutOfStock),
		errors.Is(err, domain.ErrCartEmpty):
		response.Error(w, http.StatusConflict, err)
	default:
		logger.ErrorContext(r.Context(), "Request failed",
			slog.String("error", err.Error()),
		)
		response.Message(w, http.StatusInternalServerError, "internal error")
	}
}

func writeBadBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.WarnContext(r.Context(), "Failed to decode request body",
		slog.String("error", err.Error()),
	)
	response.Error(w, http.StatusBadRequest, err)
}
