package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "storage-equipment/pkg/errors"
)

// ErrorBody — тело ответа при ошибке. Клиент читает поле message.
type ErrorBody struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Success отдаёт запись без обёртки: контракт консоли ждёт «голый» JSON.
func Success[T any](c echo.Context, code int, data T) error {
	return c.JSON(code, data)
}

// SuccessList гарантирует `[]`, а не `null`, для пустого списка.
func SuccessList[T any](c echo.Context, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, list)
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var details map[string]interface{}

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors
	var invalidInput *apperrors.InvalidInputError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		msg = httpErr.Message
		details = httpErr.Details
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		msg = "validation failed"
		details = make(map[string]interface{}, len(validationErrs))
		for _, fe := range validationErrs {
			details[fe.Field()] = fe.Tag()
		}
	case errors.As(err, &invalidInput):
		code = http.StatusBadRequest
		msg = invalidInput.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		msg = "not found"
	case errors.Is(err, apperrors.ErrOrderNotPending):
		code = http.StatusConflict
		msg = "order is no longer pending"
	}

	if code >= http.StatusInternalServerError {
		logger.Error("ошибка обработки запроса",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	return c.JSON(code, ErrorBody{Status: false, Message: msg, Details: details})
}
