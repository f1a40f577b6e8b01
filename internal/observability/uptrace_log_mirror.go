package observability

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/season-insights/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const (
	logInstrumentation = "season-insights/internal/platform/logging"
	maxLogValueDepth   = 3
)

var probeLogPaths = []string{"/healthz", "/livez", "/readyz"}

type logMirror struct {
	otel otellog.Logger
}

func newLogMirror(serviceVersion string) logging.MirrorFunc {
	m := logMirror{
		otel: otelglobal.Logger(logInstrumentation, otellog.WithInstrumentationVersion(serviceVersion)),
	}
	return m.emit
}

func (m logMirror) emit(ctx context.Context, level logging.Level, msg string, args ...any) {
	if isHealthProbeLog(msg, args) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	severity := toOTelSeverity(level)
	if !m.otel.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
		return
	}

	var record otellog.Record
	ts := time.Now().UTC()
	record.SetTimestamp(ts)
	record.SetObservedTimestamp(ts)
	record.SetSeverity(severity)
	record.SetSeverityText(level.CapitalString())
	record.SetEventName(msg)
	record.SetBody(otellog.StringValue(msg))
	record.AddAttributes(logAttributes(args)...)
	m.otel.Emit(ctx, record)
}

// isHealthProbeLog matches the request log line of liveness probes, which
// would otherwise dominate the exported volume.
func isHealthProbeLog(msg string, args []any) bool {
	if msg != "http request" {
		return false
	}
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == "path" {
			path, _ := args[i+1].(string)
			return slices.Contains(probeLogPaths, path)
		}
	}
	return false
}

// logAttributes mirrors the zap field rules: unnamed values become arg_N and
// a trailing key without a value is kept empty.
func logAttributes(args []any) []otellog.KeyValue {
	attrs := make([]otellog.KeyValue, 0, len(args)/2+1)
	for pair := 0; 2*pair < len(args); pair++ {
		key, _ := args[2*pair].(string)
		if strings.TrimSpace(key) == "" {
			key = "arg_" + strconv.Itoa(pair)
		}
		if 2*pair+1 == len(args) {
			attrs = append(attrs, otellog.Empty(key))
			break
		}
		attrs = append(attrs, otellog.KeyValue{Key: key, Value: toOTelLogValue(args[2*pair+1], 0)})
	}
	return attrs
}

func toOTelSeverity(level zapcore.Level) otellog.Severity {
	switch level {
	case zapcore.DebugLevel:
		return otellog.SeverityDebug
	case zapcore.InfoLevel:
		return otellog.SeverityInfo
	case zapcore.WarnLevel:
		return otellog.SeverityWarn
	case zapcore.ErrorLevel:
		return otellog.SeverityError
	}
	if level < zapcore.DebugLevel {
		return otellog.SeverityDebug
	}
	return otellog.SeverityFatal
}

// toOTelLogValue converts a logger argument. Common concrete types are
// matched directly; everything else goes through reflection up to
// maxLogValueDepth levels of nesting, then falls back to fmt.
func toOTelLogValue(value any, depth int) otellog.Value {
	switch v := value.(type) {
	case nil:
		return otellog.Value{}
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case int:
		return otellog.IntValue(v)
	case int64:
		return otellog.Int64Value(v)
	case float64:
		return otellog.Float64Value(v)
	case []byte:
		return otellog.BytesValue(append([]byte(nil), v...))
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return otellog.StringValue(v.String())
	case error:
		return otellog.StringValue(v.Error())
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	}
	if depth >= maxLogValueDepth {
		return otellog.StringValue(fmt.Sprint(value))
	}
	return reflectLogValue(reflect.ValueOf(value), depth)
}

func reflectLogValue(rv reflect.Value, depth int) otellog.Value {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return otellog.Int64Value(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= 1<<63-1 {
			return otellog.Int64Value(int64(u))
		}
	case reflect.Float32, reflect.Float64:
		return otellog.Float64Value(rv.Float())
	case reflect.String:
		return otellog.StringValue(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return otellog.Value{}
		}
		return toOTelLogValue(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		items := make([]otellog.Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, toOTelLogValue(rv.Index(i).Interface(), depth+1))
		}
		return otellog.SliceValue(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			keys := rv.MapKeys()
			slices.SortFunc(keys, func(a, b reflect.Value) int { return strings.Compare(a.String(), b.String()) })
			kvs := make([]otellog.KeyValue, 0, len(keys))
			for _, key := range keys {
				kvs = append(kvs, otellog.KeyValue{Key: key.String(), Value: toOTelLogValue(rv.MapIndex(key).Interface(), depth+1)})
			}
			return otellog.MapValue(kvs...)
		}
	}
	return otellog.StringValue(fmt.Sprint(rv.Interface()))
}
