package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Error — ответ сервера с кодом вне 2xx. Message уже пригоден для показа пользователю.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// TransportError — запрос не дошёл до сервера или ответ не удалось прочитать.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusOf возвращает HTTP-код ошибки API или 0, если это не *Error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsTransport — true, если сервер вообще не ответил.
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
