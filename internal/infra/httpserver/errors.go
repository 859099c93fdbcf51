package httpserver

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/bryanwahyu/scamwatch/internal/middleware"
)

const msgInvalidData = "Invalid data"

// apiError is an error with a response shape. Handlers return it for
// anything the client should see; other errors become a 500 carrying
// the route's failure message.
type apiError struct {
	status  int
	message string
	fields  []middleware.FieldError
	cause   error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *apiError) Unwrap() error { return e.cause }

func notFound(msg string) error {
	return &apiError{status: http.StatusNotFound, message: msg}
}

func badRequest(cause error) error {
	e := &apiError{status: http.StatusBadRequest, message: msgInvalidData, cause: cause}
	var verr *middleware.ValidationError
	if errors.As(cause, &verr) {
		e.fields = verr.Errors
	}
	return e
}

type errorBody struct {
	Message string                  `json:"message"`
	Errors  []middleware.FieldError `json:"errors,omitempty"`
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap adapts h to http.HandlerFunc. failMsg is the body message for
// unexpected errors.
func (r *Router) wrap(h handlerFunc, failMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var ae *apiError
		if !errors.As(err, &ae) {
			ae = &apiError{status: http.StatusInternalServerError, message: failMsg, cause: err}
		}
		if ae.status >= http.StatusInternalServerError {
			r.log.Error(failMsg,
				zap.String("path", req.URL.Path),
				zap.String("request_id", middleware.RequestIDFromContext(req.Context())),
				zap.Error(ae.cause),
			)
		}
		writeJSON(w, ae.status, errorBody{Message: ae.message, Errors: ae.fields})
	}
}
