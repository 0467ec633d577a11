package http

import (
	"errors"
	"net/http"

	"jibekjoly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

// errorResponse is the single place where application errors become HTTP
// responses. Unclassified errors are logged and hidden behind a generic 500.
func (s *Server) errorResponse(c echo.Context, err error) error {
	status, message := classify(err)

	body := Error{Code: status, Message: message}
	if status == http.StatusBadRequest {
		body.Field, _ = errs.ParamName(err)
	}

	switch status {
	case http.StatusInternalServerError:
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
	case http.StatusConflict:
		s.logger.Info("request conflicted", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}

	return c.JSON(status, body)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrMisconfigured):
		return http.StatusInternalServerError, "Server is misconfigured"
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func badRequest(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message, Field: field})
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: message})
}
