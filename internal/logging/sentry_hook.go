package logging

import (
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards log entries of the configured levels to Sentry.
type SentryHook struct {
	levels []logrus.Level
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels: levels,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	level := sentry.LevelError
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel:
		level = sentry.LevelFatal
	case logrus.WarnLevel:
		level = sentry.LevelWarning
	case logrus.InfoLevel:
		level = sentry.LevelInfo
	case logrus.DebugLevel, logrus.TraceLevel:
		level = sentry.LevelDebug
	}

	event := sentry.NewEvent()
	event.Level = level
	event.Message = entry.Message
	for key, val := range entry.Data {
		event.Extra[key] = val
	}

	sentry.CaptureEvent(event)

	return nil
}
