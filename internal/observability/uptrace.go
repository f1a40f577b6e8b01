package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/season-insights/internal/config"
	"github.com/riskibarqy/season-insights/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// uptraceDisabledReason explains why export is off, or returns "" when it
// should be configured.
func uptraceDisabledReason(cfg config.Config) string {
	if !cfg.UptraceEnabled {
		return "UPTRACE_ENABLED=false"
	}
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		return "UPTRACE_DSN empty"
	}
	return ""
}

func uptraceOptions(cfg config.Config) []uptrace.Option {
	return []uptrace.Option{
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	}
}

// InitUptrace installs the global OpenTelemetry providers and, when log
// export is on, mirrors every logger record to the OTLP log pipeline.
// Without export the global providers stay no-op, so spans are never
// recorded.
func InitUptrace(cfg config.Config, logger *logging.Logger) (ShutdownFunc, error) {
	if logger == nil {
		logger = logging.Default()
	}

	logging.SetMirror(nil)
	if reason := uptraceDisabledReason(cfg); reason != "" {
		logger.Info("telemetry export off", "exporter", "uptrace", "reason", reason)
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(uptraceOptions(cfg)...)
	if cfg.UptraceLogsEnabled {
		logging.SetMirror(newLogMirror(cfg.ServiceVersion))
	}
	logger.Info("telemetry export on",
		"exporter", "uptrace",
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
		"logs", cfg.UptraceLogsEnabled,
	)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}
