package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "tailorshop/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Total   *uint64     `json:"total,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	resp := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		resp.Total = &total[0]
	}
	return ctx.JSON(code, resp)
}

// ErrorResponse maps the error taxonomy to HTTP statuses and logs the
// internal cause. Only the user-facing message is sent to the client.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *apperrors.HttpError
	var precondErr *apperrors.PreconditionError
	var inputErr *apperrors.InvalidInputError

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &precondErr):
		code = http.StatusUnprocessableEntity
		message = precondErr.Message
	case errors.As(err, &inputErr):
		code = http.StatusBadRequest
		message = inputErr.Message
	case errors.Is(err, apperrors.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, apperrors.ErrRoleNotAllowed):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		code = http.StatusConflict
		message = apperrors.ErrConflict.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = apperrors.ErrNotFound.Error()
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrStatusInUse):
		code = http.StatusConflict
		message = err.Error()
	}

	if logger != nil {
		fields := []zap.Field{
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Int("code", code),
			zap.Error(err),
		}
		if httpErr != nil && httpErr.Details != nil {
			fields = append(fields, zap.Any("details", httpErr.Details))
		}
		if code >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Warn("request rejected", fields...)
		}
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
	})
}
