package api

import (
	"context"
	"log/slog"
	"net/http"
)

// ErrorKind is a class of handler failure.
type ErrorKind int

const (
	// NotFound: the requested resource or page does not exist.
	NotFound ErrorKind = iota
	// Unprocessable: the request is well formed but cannot be satisfied.
	Unprocessable
	// Validation: the request body is malformed.
	Validation
	// MethodNotAllowed: the route exists but not for this method.
	MethodNotAllowed
	// Internal: an unexpected fault while serving the request.
	Internal
)

var defaultMessages = map[ErrorKind]string{
	NotFound:         "Resource not found",
	Unprocessable:    "Unable to process the request",
	Validation:       "bad request",
	MethodNotAllowed: "method not allowed",
	Internal:         "Internal Server Error",
}

var codes = map[ErrorKind]int{
	NotFound:         http.StatusNotFound,
	Unprocessable:    http.StatusUnprocessableEntity,
	Validation:       http.StatusBadRequest,
	MethodNotAllowed: http.StatusMethodNotAllowed,
	Internal:         http.StatusInternalServerError,
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Classifier maps failure kinds to HTTP responses.
//
// By default (Strict false) an Unprocessable failure keeps HTTP 200
// and only carries 422 in the body; strict mode sends the 422 status too.
type Classifier struct {
	Strict bool
}

// Code is the value of the body's error field for k.
func (c Classifier) Code(k ErrorKind) int {
	return codes[k]
}

// Status is the HTTP status written for k.
func (c Classifier) Status(k ErrorKind) int {
	if k == Unprocessable && !c.Strict {
		return http.StatusOK
	}
	return codes[k]
}

// Write sends the structured body for k. An empty message uses the default
// message of the kind.
func (c Classifier) Write(w http.ResponseWriter, k ErrorKind, message string) {
	if message == "" {
		message = defaultMessages[k]
	}
	writeJSON(w, errorResponse{Success: false, Error: c.Code(k), Message: message}, c.Status(k))
}

// Fail logs err and sends the generic failure body with HTTP 200.
func (c Classifier) Fail(ctx context.Context, w http.ResponseWriter, message string, err error) {
	logger.ErrorContext(ctx, message,
		slog.Any("err", err),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
	writeJSON(w, failureResponse{Success: false, Error: message}, http.StatusOK)
}

// Abort logs err and sends the fixed 500 body.
func (c Classifier) Abort(ctx context.Context, w http.ResponseWriter, err error) {
	logger.ErrorContext(ctx, "request aborted",
		slog.Any("err", err),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
	c.Write(w, Internal, "")
}

// NotFoundHandler answers unmatched routes.
func (c Classifier) NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.Write(w, NotFound, "")
	})
}

// MethodNotAllowedHandler answers routes matched with a disallowed method.
func (c Classifier) MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.Write(w, MethodNotAllowed, "")
	})
}
