package controller

import (
	"net/http"
	"time"

	"github.com/MFrackowiak/mf-simple-calendar/core/errors"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"

	"github.com/labstack/echo/v4"
)

// Response types
type (
	SuccessResponse struct {
		Success   bool      `json:"success"`
		Message   string    `json:"message,omitempty"`
		Data      any       `json:"data,omitempty"`
		Timestamp time.Time `json:"timestamp"`
	}

	ErrorResponse struct {
		Success   bool             `json:"success"`
		Error     errors.ErrorCode `json:"error"`
		Message   string           `json:"message"`
		Timestamp time.Time        `json:"timestamp"`
	}
)

// BaseController maps service-layer AppErrors onto HTTP responses so every
// endpoint returns the same envelope shape.
type BaseController interface {
	Success(c echo.Context, data any, message string) error
	Unauthorized(c echo.Context, message string) error
	AppError(c echo.Context, appErr *errors.AppError) error
	Malformed(c echo.Context, message string) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func newSuccessResponse(data any, message string) *SuccessResponse {
	return &SuccessResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func newErrorResponse(code errors.ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func httpStatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrValidation, errors.ErrMalformed:
		return http.StatusBadRequest
	case errors.ErrPermission:
		return http.StatusForbidden
	case errors.ErrStore, errors.ErrUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (h *responseHandler) Success(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, newSuccessResponse(data, message))
}

func (h *responseHandler) Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, newErrorResponse(errors.ErrPermission, message))
}

// Malformed is for requests the controller rejects before reaching a service,
// e.g. an unparseable body or path parameter.
func (h *responseHandler) Malformed(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, newErrorResponse(errors.ErrMalformed, message))
}

func (h *responseHandler) AppError(c echo.Context, appErr *errors.AppError) error {
	if appErr == nil {
		return h.Success(c, nil, "")
	}

	status := httpStatusFor(appErr.Code)
	if status == http.StatusInternalServerError {
		logger.Error("BaseController:AppError",
			"status", status,
			"code", appErr.Code,
			"message", appErr.Message,
			"cause", appErr.Err,
		)
	}
	return c.JSON(status, newErrorResponse(appErr.Code, appErr.Message))
}
