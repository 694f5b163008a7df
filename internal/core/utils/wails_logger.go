package utils

import (
	"os"

	wlogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger routes the webview runtime's own log lines through Logger.
type WailsLogger struct {
	logger *Logger
}

var _ wlogger.Logger = (*WailsLogger)(nil)

func NewWailsLogger(l *Logger) *WailsLogger {
	return &WailsLogger{logger: l.WithOperation("runtime")}
}

func (w *WailsLogger) Print(message string) {
	w.logger.Info(message)
}

func (w *WailsLogger) Trace(message string) {
	w.logger.Debug(message, "trace", true)
}

func (w *WailsLogger) Debug(message string) {
	w.logger.Debug(message)
}

func (w *WailsLogger) Info(message string) {
	w.logger.Info(message)
}

func (w *WailsLogger) Warning(message string) {
	w.logger.Warn(message)
}

func (w *WailsLogger) Error(message string) {
	w.logger.Error(message)
}

func (w *WailsLogger) Fatal(message string) {
	w.logger.Error(message, "fatal", true)
	os.Exit(1)
}

// WailsLogLevel maps a logging.level string onto the runtime's level scale.
func WailsLogLevel(level string) wlogger.LogLevel {
	switch level {
	case "debug":
		return wlogger.DEBUG
	case "warn":
		return wlogger.WARNING
	case "error":
		return wlogger.ERROR
	default:
		return wlogger.INFO
	}
}
