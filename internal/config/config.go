package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/season-insights/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config stores runtime configuration for the service. Every key has a
// default, so the service starts with an empty environment.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	ShutdownTimeout            time.Duration
	LogLevel                   logging.Level
	CORSAllowedOrigins         []string
	SwaggerEnabled             bool
	SeasonSource               string
	SeasonCSVPath              string
	SeasonCSVDelimiter         rune
	DBURL                      string
	DBDisablePreparedBinary    bool
	SeasonDBTable              string
	SeasonDBOrderColumn        string
	SeasonDBSeasonColumn       string
	SeasonDBSeason             string
	MaxComparisonPlayers       int
	ChartWidthInch             float64
	ChartHeightInch            float64
	ChartCacheEntries          int
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := parsePositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := parsePositiveDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := parsePositiveDuration("APP_SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	source, err := parseSeasonSource(getEnv("SEASON_SOURCE", SourceCSV))
	if err != nil {
		return Config{}, err
	}
	delimiter, err := parseDelimiter(getEnv("SEASON_CSV_DELIMITER", ","))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON_CSV_DELIMITER: %w", err)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if source == SourcePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when SEASON_SOURCE=%s", SourcePostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	maxComparisonPlayers, err := getEnvAsInt("MAX_COMPARISON_PLAYERS", 25)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_COMPARISON_PLAYERS: %w", err)
	}
	if maxComparisonPlayers < 1 {
		return Config{}, fmt.Errorf("MAX_COMPARISON_PLAYERS must be >= 1")
	}

	chartWidth, err := parsePositiveFloat("CHART_WIDTH_INCH", "8")
	if err != nil {
		return Config{}, err
	}
	chartHeight, err := parsePositiveFloat("CHART_HEIGHT_INCH", "6")
	if err != nil {
		return Config{}, err
	}

	chartCacheEntries, err := getEnvAsInt("CHART_CACHE_ENTRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse CHART_CACHE_ENTRIES: %w", err)
	}
	if chartCacheEntries < 0 {
		return Config{}, fmt.Errorf("CHART_CACHE_ENTRIES must be >= 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "season-insights-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		ShutdownTimeout:            shutdownTimeout,
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:             swaggerEnabled,
		SeasonSource:               source,
		SeasonCSVPath:              strings.TrimSpace(getEnv("SEASON_CSV_PATH", "premier_league_2024_25.csv")),
		SeasonCSVDelimiter:         delimiter,
		DBURL:                      dbURL,
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		SeasonDBTable:              strings.TrimSpace(getEnv("SEASON_DB_TABLE", "season_player_stats")),
		SeasonDBOrderColumn:        strings.TrimSpace(getEnv("SEASON_DB_ORDER_COLUMN", "row_order")),
		SeasonDBSeasonColumn:       strings.TrimSpace(getEnv("SEASON_DB_SEASON_COLUMN", "season")),
		SeasonDBSeason:             strings.TrimSpace(getEnv("SEASON_DB_SEASON", "")),
		MaxComparisonPlayers:       maxComparisonPlayers,
		ChartWidthInch:             chartWidth,
		ChartHeightInch:            chartHeight,
		ChartCacheEntries:          chartCacheEntries,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.SeasonSource == SourceCSV && cfg.SeasonCSVPath == "" {
		return Config{}, fmt.Errorf("SEASON_CSV_PATH cannot be empty")
	}
	if cfg.SeasonSource == SourcePostgres && cfg.SeasonDBTable == "" {
		return Config{}, fmt.Errorf("SEASON_DB_TABLE cannot be empty when SEASON_SOURCE=%s", SourcePostgres)
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return d, nil
}

func parsePositiveFloat(key, fallback string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(getEnv(key, fallback)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return v, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseDelimiter accepts a single character, or "tab" and `\t` for tabs.
func parseDelimiter(raw string) (rune, error) {
	value := strings.TrimSpace(raw)
	switch strings.ToLower(value) {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", raw)
	}

	r, _ := utf8.DecodeRuneInString(value)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", raw)
	}
	return r, nil
}

func parseSeasonSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case SourceCSV, SourcePostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid SEASON_SOURCE %q: valid values are %s, %s", v, SourceCSV, SourcePostgres)
	}
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
