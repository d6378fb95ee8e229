package observe

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Options configures a Logger. Zero values fall back to debug level JSON on stdout.
type Options struct {
	AppName string
	AppEnv  string
	Level   string
	Format  string
	Writers []io.Writer

	// ErrorSinks get error level entries and above, always JSON encoded whatever Format is.
	// SentryHook belongs here.
	ErrorSinks []io.Writer
}

type Logger struct {
	appEnv  string
	appName string
	l       *zap.Logger
}

// NewZapLogger builds a debug level JSON logger writing to the given writers (stdout if none).
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	l, _ := New(Options{AppName: appName, Writers: writers})
	return l
}

func New(opts Options) (*Logger, error) {
	level := zapcore.DebugLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timestampLayout)
	cfg.TimeKey = "timestamp"
	sinkCfg := cfg

	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", "json":
		encoder = zapcore.NewJSONEncoder(cfg)
	case "console":
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var multiWriters []zapcore.WriteSyncer
	if len(opts.Writers) == 0 {
		multiWriters = append(multiWriters, os.Stdout)
	} else {
		for _, writer := range opts.Writers {
			multiWriters = append(multiWriters, zapcore.AddSync(writer))
		}
	}

	cores := []zapcore.Core{zapcore.NewCore(
		encoder,
		zapcore.NewMultiWriteSyncer(multiWriters...),
		level,
	)}

	if len(opts.ErrorSinks) > 0 {
		sinks := make([]zapcore.WriteSyncer, 0, len(opts.ErrorSinks))
		for _, sink := range opts.ErrorSinks {
			sinks = append(sinks, zapcore.AddSync(sink))
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(sinkCfg),
			zapcore.NewMultiWriteSyncer(sinks...),
			zapcore.ErrorLevel,
		))
	}

	core := zapcore.NewTee(cores...)

	return &Logger{
		appEnv:  opts.AppEnv,
		appName: opts.AppName,
		l:       zap.New(core),
	}, nil
}

func (l *Logger) Stop() error {
	return l.l.Sync()
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams()
	l.with(fields).Error(
		err.Error(),
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("error", err.Error()),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.with(fields).Info(msg, l.commonFields()...)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.with(fields).Warn(msg, l.commonFields()...)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.with(fields).Debug(msg, l.commonFields()...)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.with(fields).Fatal(msg, l.commonFields()...)
}

func (l *Logger) with(fields []map[string]any) *zap.Logger {
	if len(fields) == 0 || len(fields[0]) == 0 {
		return l.l
	}
	return l.l.With(mapToZapFields(fields[0])...)
}

// commonFields is only called from the level methods above, so the caller sits three frames up.
func (l *Logger) commonFields() []zap.Field {
	file, line, funcName := callerAt(3)
	return []zap.Field{
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	}
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		if err, ok := v.(error); ok {
			zapFields = append(zapFields, zap.NamedError(k, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

func getRuntimeParams() (file string, line int, funcName string) {
	return callerAt(3)
}

func callerAt(skip int) (file string, line int, funcName string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "not_defined", 0, "not_defined"
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}
	return file, line, funcName
}

// Since reports elapsed milliseconds, used as a log field value.
func Since(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
