// Package logging wraps zap behind a slog-like key/value API. Records carry
// the active trace and span IDs, and can be mirrored to a second sink such as
// an OpenTelemetry log exporter.
package logging

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug Level = zapcore.DebugLevel
	LevelInfo  Level = zapcore.InfoLevel
	LevelWarn  Level = zapcore.WarnLevel
	LevelError Level = zapcore.ErrorLevel
)

// MirrorFunc receives every record that passed the level check, after it
// was written to zap.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

type Logger struct {
	base   *zap.Logger
	synced atomic.Bool
}

type settings struct {
	sink   io.Writer
	static []zap.Field
}

type Option func(*settings)

// WithOutput redirects encoded records, stdout by default.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.sink = w
		}
	}
}

// WithService stamps every record with the service identity.
func WithService(name, version, env string) Option {
	return func(s *settings) {
		s.static = append(s.static, zap.String("service", name), zap.String("version", version), zap.String("env", env))
	}
}

var (
	fallback atomic.Pointer[Logger]
	mirrorFn atomic.Pointer[MirrorFunc]
)

func init() {
	fallback.Store(NewNop())
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "msg"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

// NewJSON builds a logger that writes one JSON object per record at or
// above level. Error records carry a stack trace.
func NewJSON(level Level, opts ...Option) *Logger {
	s := settings{sink: os.Stdout}
	for _, opt := range opts {
		opt(&s)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.Lock(zapcore.AddSync(s.sink)), level)
	// two frames sit between the caller and Check: the level method and emit
	base := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(LevelError)).With(s.static...)
	return FromZap(base)
}

func NewNop() *Logger {
	return FromZap(nil)
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		return &Logger{base: zap.NewNop()}
	}
	return &Logger{base: z}
}

// ParseLevel maps a config value to a level. Unknown values mean info.
func ParseLevel(v string) Level {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case "warning":
		return LevelWarn
	case "debug", "warn", "error":
		var level Level
		_ = level.Set(v)
		return level
	}
	return LevelInfo
}

func Default() *Logger {
	if l := fallback.Load(); l != nil {
		return l
	}
	return NewNop()
}

func SetDefault(l *Logger) {
	if l == nil {
		l = NewNop()
	}
	fallback.Store(l)
}

// SetMirror installs fn as the process-wide mirror; nil removes it.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirrorFn.Store(nil)
		return
	}
	mirrorFn.Store(&fn)
}

func (l *Logger) Zap() *zap.Logger {
	return l.resolve().base
}

// Sync flushes buffered records once; later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil || l.base == nil || !l.synced.CompareAndSwap(false, true) {
		return nil
	}
	return l.base.Sync()
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return FromZap(l.base.With(fieldsOf(args)...))
}

func (l *Logger) Debug(msg string, args ...any) { l.emit(context.Background(), LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any) { l.emit(context.Background(), LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any) { l.emit(context.Background(), LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.emit(context.Background(), LevelError, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelDebug, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, LevelError, msg, args)
}

func (l *Logger) resolve() *Logger {
	if l == nil || l.base == nil {
		return Default()
	}
	return l
}

func (l *Logger) emit(ctx context.Context, level Level, msg string, args []any) {
	entry := l.resolve().base.Check(level, msg)
	if entry == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	entry.Write(append(fieldsOf(args), spanFields(ctx)...)...)

	if fn := mirrorFn.Load(); fn != nil {
		(*fn)(ctx, level, msg, args...)
	}
}

func spanFields(ctx context.Context) []zap.Field {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{zap.Stringer("trace_id", sc.TraceID()), zap.Stringer("span_id", sc.SpanID())}
}

// fieldsOf turns alternating key/value args into zap fields. A non-string
// key is replaced by arg_N; a trailing key without a value logs null.
func fieldsOf(args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args)/2+1)
	for rest := args; len(rest) > 0; {
		key, ok := rest[0].(string)
		if !ok || key == "" {
			key = "arg_" + strconv.Itoa((len(args)-len(rest))/2)
		}
		if len(rest) == 1 {
			fields = append(fields, zap.Any(key, nil))
			break
		}

		switch value := rest[1].(type) {
		case error:
			fields = append(fields, zap.NamedError(key, value))
		default:
			fields = append(fields, zap.Any(key, value))
		}
		rest = rest[2:]
	}
	return fields
}
