package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger пишет в лог каждый запрос: метод, путь, код ответа и время обработки.
// Ответы 5xx идут уровнем Error, 4xx уровнем Warn.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
			}
			switch {
			case status >= 500:
				logger.Error("запрос завершился ошибкой", fields...)
			case status >= 400:
				logger.Warn("запрос отклонён", fields...)
			default:
				logger.Debug("запрос обработан", fields...)
			}
			return nil
		}
	}
}
