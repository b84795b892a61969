package errors

import "fmt"

var (
	ErrNotFound         = fmt.Errorf("запись не найдена")
	ErrBadRequest       = fmt.Errorf("неверный запрос")
	ErrConflict         = fmt.Errorf("конфликт состояния записи")
	ErrOrderNotPending  = fmt.Errorf("заказ уже не в статусе pending")
	ErrCacheMiss        = fmt.Errorf("ключ отсутствует в кеше")
	ErrValidationFailed = fmt.Errorf("данные формы не прошли проверку")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError несёт код ответа и сообщение для пользователя; Err остаётся для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}
