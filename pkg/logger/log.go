package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger пишет в stdout и, если задан file, дополнительно в ротируемый файл.
// Неизвестный уровень трактуется как info.
func NewLogger(level, file string) *zap.Logger {
	atomic := zap.NewAtomicLevelAt(zap.InfoLevel)
	if level != "" {
		if err := atomic.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			atomic = zap.NewAtomicLevelAt(zap.InfoLevel)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), atomic),
	}
	if file != "" {
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    100, // MB
			MaxBackups: 5,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, atomic))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}
