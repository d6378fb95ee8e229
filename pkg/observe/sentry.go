package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer meant to be passed to the logger next to stdout.
// It forwards error and fatal entries to Sentry and ignores everything else.
type SentryHook struct {
	appZone string
	appName string
	capture func(*sentry.Event)
}

type sentryLogEntry struct {
	Level      string `json:"level"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Timestamp  string `json:"timestamp"`
	Station    string `json:"station"`
}

func NewSentryHook(appZone, appName, dsn string, isDebug bool) (*SentryHook, error) {
	if dsn == "" {
		return nil, errors.New("sentry: empty DSN")
	}

	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout

	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appZone,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       appName,
		Transport:        sentryTransport,
	}); err != nil {
		return nil, errors.Wrap(err, "sentry init")
	}

	return &SentryHook{
		appZone: appZone,
		appName: appName,
		capture: func(e *sentry.Event) { sentry.CaptureEvent(e) },
	}, nil
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return sentry.Flush(_sentryFlushTimeout)
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

func (h *SentryHook) Write(p []byte) (int, error) {
	switch h.appZone {
	case "prod", "production", "dev", "development":
	default:
		return len(p), nil
	}

	event, err := h.event(p)
	if err != nil {
		log.Println(err.Error())
		return len(p), nil
	}
	if event != nil {
		h.capture(event)
	}

	return len(p), nil
}

// event returns nil for entries below error level.
func (h *SentryHook) event(p []byte) (*sentry.Event, error) {
	var entry sentryLogEntry
	if err := json.Unmarshal(p, &entry); err != nil {
		return nil, errors.Wrap(err, "[SentryHook] json.Unmarshal data")
	}

	level, err := zapcore.ParseLevel(entry.Level)
	if err != nil {
		return nil, errors.Wrap(err, "[SentryHook] parse zap level")
	}
	if level < zapcore.ErrorLevel || entry.Message == "" {
		return nil, nil
	}

	timestamp, err := time.Parse(timestampLayout, entry.Timestamp)
	if err != nil {
		timestamp = time.Now()
	}

	event := sentry.NewEvent()
	event.Environment = h.appZone
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = entry.Message
	event.Extra["AppName"] = h.appName
	event.Extra["Error"] = entry.Error
	event.Extra["CallerFile"] = entry.CallerFile
	event.Extra["CallerLine"] = entry.CallerLine
	event.Extra["CallerFunc"] = entry.CallerFunc
	event.Extra["Stack"] = entry.Stack
	if entry.Station != "" {
		event.Tags["station"] = entry.Station
	}
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       entry.Message,
		Value:      entry.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event, nil
}
