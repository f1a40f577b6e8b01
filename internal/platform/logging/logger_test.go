package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	out := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		var record map[string]any
		if err := sonic.UnmarshalString(line, &record); err != nil {
			t.Fatalf("unmarshal log line %q: %v", line, err)
		}
		out = append(out, record)
	}
	return out
}

func TestNewJSON_WritesFieldsAndService(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, WithOutput(&buf), WithService("season-insights", "v1", "dev"))

	logger.Debug("hidden")
	logger.Info("season table loaded", "rows", 3, "error", errors.New("none"))

	records := decodeLines(t, &buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]
	if got["msg"] != "season table loaded" || got["level"] != "INFO" {
		t.Fatalf("unexpected record: %v", got)
	}
	if got["rows"] != float64(3) {
		t.Fatalf("unexpected rows field: %v", got["rows"])
	}
	if got["error"] != "none" {
		t.Fatalf("unexpected error field: %v", got["error"])
	}
	if got["service"] != "season-insights" || got["env"] != "dev" {
		t.Fatalf("missing service fields: %v", got)
	}
	if caller, _ := got["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("unexpected caller %q", caller)
	}
}

func TestLogContext_AddsTraceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelDebug, WithOutput(&buf))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "slow render")

	records := decodeLines(t, &buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["trace_id"] != traceID.String() || records[0]["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %v", records[0])
	}
}

func TestSetMirror(t *testing.T) {
	var mirrored []string
	SetMirror(func(_ context.Context, level Level, msg string, _ ...any) {
		mirrored = append(mirrored, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, WithOutput(&buf))
	logger.Debug("filtered")
	logger.Error("export failed")

	if len(mirrored) != 1 || mirrored[0] != "error:export failed" {
		t.Fatalf("unexpected mirrored records: %v", mirrored)
	}

	SetMirror(nil)
	logger.Error("not mirrored")
	if len(mirrored) != 1 {
		t.Fatalf("mirror still active after removal")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}

func TestWith_NamesOddArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, WithOutput(&buf)).With(42, "positional", "dangling")

	logger.Info("chart rendered")

	records := decodeLines(t, &buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["arg_0"] != "positional" {
		t.Fatalf("expected positional value under arg_0: %v", records[0])
	}
	if v, ok := records[0]["dangling"]; !ok || v != nil {
		t.Fatalf("expected null dangling key: %v", records[0])
	}
}

func TestSync_OnlyOnce(t *testing.T) {
	logger := NewJSON(LevelInfo, WithOutput(&bytes.Buffer{}))
	if err := logger.Sync(); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("second sync: %v", err)
	}
}
