package httpapi

import (
	"errors"
	"net/http"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"go.uber.org/zap"
)

// DataResult success envelope shared with the web client
type DataResult[T any] struct {
	Data T `json:"data"`
}

// MessageResult error envelope; Errors is only set for validation failures
type MessageResult struct {
	Message string                  `json:"message"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}

func Ok[T any](data T) DataResult[T] {
	return DataResult[T]{Data: data}
}

func Fail(message string) MessageResult {
	return MessageResult{Message: message}
}

// writeError maps err onto 400, 404 or 500. fallback is the only message a
// caller sees for unexpected errors, e.g. "Error creating tenant".
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, fallback string) {
	var ve domain.ValidationErrors
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &ve):
		msg := "Invalid input"
		if len(ve) > 0 {
			msg = ve[0].Message
		}
		writeJSON(w, http.StatusBadRequest, MessageResult{Message: msg, Errors: ve})
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, Fail(nf.Error()))
	default:
		logger.Error(fallback,
			zap.Error(err),
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Uint("user_id", UserIDFrom(r.Context())),
		)
		writeJSON(w, http.StatusInternalServerError, Fail(fallback))
	}
}
