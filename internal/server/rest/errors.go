package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/radar/internal/logging"
	"github.com/labstack/echo/v4"
)

const internalErrorDetail = "Internal server error"

// APIError is an error with a client-facing status and detail. Inner keeps
// the cause for logs and is never sent to the client.
type APIError struct {
	Status int
	Detail string
	Inner  error
}

func NewAPIError(status int, detail string, inner error) *APIError {
	return &APIError{Status: status, Detail: detail, Inner: inner}
}

func (e *APIError) Error() string {
	if e.Inner != nil {
		return e.Detail + ": " + e.Inner.Error()
	}
	return e.Detail
}

func (e *APIError) Unwrap() error {
	return e.Inner
}

// errorResponse is the JSON body of every non-2xx answer.
type errorResponse struct {
	Detail string `json:"detail"`
}

// HTTPErrorHandler renders errors returned by handlers.
type HTTPErrorHandler struct {
	logger logging.Logger
}

func NewHTTPErrorHandler(l logging.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{logger: l}
}

// RegisterErrorHandler installs the handler on e.
func RegisterErrorHandler(e *echo.Echo, l logging.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(l).Handler
}

// Handler converts err into a status and a {"detail": ...} body.
// Anything that is neither an APIError nor an echo.HTTPError becomes a
// generic 500; its text only reaches the log.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	status, detail := http.StatusInternalServerError, internalErrorDetail

	var apiErr *APIError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		status, detail = apiErr.Status, apiErr.Detail
	case errors.As(err, &he):
		status = he.Code
		if m, ok := he.Message.(string); ok && status < http.StatusInternalServerError {
			detail = m
		} else if status < http.StatusInternalServerError {
			detail = http.StatusText(status)
		}
	}

	if status >= http.StatusInternalServerError {
		detail = internalErrorDetail
		h.logger.Error(ctx, "HTTP request error",
			"method", c.Request().Method, "uri", c.Request().RequestURI, "err", err)
	} else {
		h.logger.Debug(ctx, "HTTP request rejected", "status", status, "err", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, errorResponse{Detail: detail})
}
