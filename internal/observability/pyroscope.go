package observability

import (
	"fmt"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/season-insights/internal/config"
	"github.com/riskibarqy/season-insights/internal/platform/logging"
)

// Rendering is allocation heavy, so heap profiles are collected alongside CPU.
var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileGoroutines,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
}

// profilerLogger routes pyroscope's own diagnostics through the app logger.
type profilerLogger struct {
	logger *logging.Logger
}

func (l profilerLogger) emit(level logging.Level, format string, args []any) {
	msg := fmt.Sprintf(format, args...)
	switch level {
	case logging.LevelError:
		l.logger.Error(msg, "component", "pyroscope")
	case logging.LevelDebug:
		l.logger.Debug(msg, "component", "pyroscope")
	default:
		l.logger.Info(msg, "component", "pyroscope")
	}
}

func (l profilerLogger) Infof(format string, args ...any)  { l.emit(logging.LevelInfo, format, args) }
func (l profilerLogger) Debugf(format string, args ...any) { l.emit(logging.LevelDebug, format, args) }
func (l profilerLogger) Errorf(format string, args ...any) { l.emit(logging.LevelError, format, args) }

// profilerConfig tags every profile with the deployment identity so flame
// graphs can be split per environment and release.
func profilerConfig(cfg config.Config, logger *logging.Logger) pyroscope.Config {
	pc := pyroscope.Config{
		ApplicationName: cfg.PyroscopeAppName,
		ServerAddress:   cfg.PyroscopeServerAddress,
		UploadRate:      cfg.PyroscopeUploadRate,
		Logger:          profilerLogger{logger: logger},
		ProfileTypes:    profileTypes,
		Tags: map[string]string{
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
			"env":     cfg.AppEnv,
		},
	}
	if cfg.PyroscopeAuthToken != "" {
		pc.AuthToken = cfg.PyroscopeAuthToken
	} else {
		pc.BasicAuthUser = cfg.PyroscopeBasicAuthUser
		pc.BasicAuthPassword = cfg.PyroscopeBasicAuthPassword
	}
	return pc
}

// InitPyroscope starts continuous profiling when enabled. The returned func
// stops the profiler and flushes the last upload.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.PyroscopeEnabled {
		logger.Info("profiling off", "profiler", "pyroscope")
		return func() error { return nil }, nil
	}

	profiler, err := pyroscope.Start(profilerConfig(cfg, logger))
	if err != nil {
		return nil, err
	}
	logger.Info("profiling on",
		"profiler", "pyroscope",
		"application", cfg.PyroscopeAppName,
		"server", cfg.PyroscopeServerAddress,
		"upload_rate", cfg.PyroscopeUploadRate.String(),
	)
	return profiler.Stop, nil
}
