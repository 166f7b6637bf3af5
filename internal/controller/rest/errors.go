package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/pricing"
	"github.com/teetime/teetime/internal/service"
)

var (
	errInvalidID          = errors.New("invalid id")
	errMissingCredentials = errors.New("missing credentials")
)

// badRequest marks an error as the caller's fault, typically a body that
// does not bind.
type badRequest struct {
	err error
}

func (e *badRequest) Error() string { return e.err.Error() }
func (e *badRequest) Unwrap() error { return e.err }

// writeError maps an error to a status code and a JSON body.
func (h *Handler) writeError(c *gin.Context, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}

func classify(err error) (int, string) {
	var (
		dateErr  *pricing.InvalidDateError
		countErr *pricing.InvalidPlayerCountError
		badReq   *badRequest
	)

	switch {
	case errors.As(err, &dateErr), errors.As(err, &countErr):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errInvalidID):
		return http.StatusBadRequest, "Invalid id"
	case errors.Is(err, errMissingCredentials), errors.Is(err, service.ErrMissingPassword):
		return http.StatusBadRequest, "Missing credentials"
	case errors.Is(err, service.ErrPasswordTooLong):
		return http.StatusBadRequest, "Password must be at most 72 bytes"
	case errors.Is(err, service.ErrInvalidUsername):
		return http.StatusBadRequest, "Invalid username"
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusBadRequest, "Username already taken"
	case errors.Is(err, service.ErrSelectionNotOffered),
		errors.Is(err, service.ErrInvalidPlayer),
		errors.Is(err, service.ErrInvalidSort):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	case errors.Is(err, service.ErrBookingNotFound):
		return http.StatusNotFound, "Game not found"
	case errors.Is(err, service.ErrPlayerNotFound):
		return http.StatusNotFound, "Player not found"
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.As(err, &badReq):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
