package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors shared by the page services.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state transition")
)

// StatusCarrier is implemented by errors that already know their upstream
// HTTP status, such as backend API failures.
type StatusCarrier interface {
	HTTPStatus() int
}

// RespondError maps service errors to HTTP responses using RFC7807.
// Errors carrying an upstream status (failed mutations against the
// inventory backend) are relayed with that status and their detail text.
func RespondError(w http.ResponseWriter, err error) {
	var carrier StatusCarrier
	switch {
	case errors.As(err, &carrier):
		Problem(w, carrier.HTTPStatus(), "Backend Request Failed", err.Error())
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrInvalidState):
		Problem(w, http.StatusConflict, "Invalid State", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
