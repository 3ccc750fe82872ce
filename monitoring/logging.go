package monitoring

import (
	"github.com/sirupsen/logrus"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger writes structured events for one component.
type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]interface{})
	// LogError is Log with err attached under the logrus error key.
	LogError(level LogLevel, eventType string, message string, err error, details map[string]interface{})
}

type logger struct {
	entry *logrus.Entry
}

// NewLogger returns a Logger writing through the standard logrus logger.
func NewLogger(component string) Logger {
	return NewLoggerWith(logrus.StandardLogger(), component)
}

// NewLoggerWith returns a Logger writing through base. Every entry carries
// a component field.
func NewLoggerWith(base *logrus.Logger, component string) Logger {
	return &logger{
		entry: base.WithField("component", component),
	}
}

func (l *logger) Log(level LogLevel, eventType string, message string, details map[string]interface{}) {
	l.with(eventType, details).Log(level.logrus(), message)
}

func (l *logger) LogError(level LogLevel, eventType string, message string, err error, details map[string]interface{}) {
	l.with(eventType, details).WithError(err).Log(level.logrus(), message)
}

func (l *logger) with(eventType string, details map[string]interface{}) *logrus.Entry {
	entry := l.entry.WithField("event_type", eventType)
	if len(details) > 0 {
		entry = entry.WithFields(logrus.Fields(details))
	}
	return entry
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) logrus() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case INFO:
		return logrus.InfoLevel
	case WARN:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
