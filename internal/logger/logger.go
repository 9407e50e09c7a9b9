package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context keys read by WithContext. The auth middleware stores the same keys on the gin context,
// and *gin.Context satisfies context.Context.
const (
	ServiceNumberKey = "service_number"
	RequestIDKey     = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger tagged with the caller's service number and request id
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger.WithField("caller", "unknown")
	}

	if sn, ok := ctx.Value(ServiceNumberKey).(string); ok && sn != "" {
		logger = logger.WithField("caller", sn)
	} else {
		logger = logger.WithField("caller", "unknown")
	}

	if rid, ok := ctx.Value(RequestIDKey).(string); ok && rid != "" {
		logger = logger.WithField("request_id", rid)
	}

	return logger
}

// Setup configures the standard logrus logger with the JSON formatter and the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
