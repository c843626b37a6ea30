package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/pitching-analytics/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	DBURL              string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string

	IngestAutoCreatePlayers bool
	IngestDefaultHand       string
	IngestDateFallbackToday bool
	IngestValidThreshold    float64
	IngestIssueLimit        int
	IngestSessionType       string

	CacheTTL time.Duration

	DBBreakerEnabled          bool
	DBBreakerFailureThreshold int
	DBBreakerOpenTimeout      time.Duration
	DBBreakerProbeLimit       int
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
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
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	autoCreate, err := strconv.ParseBool(getEnv("INGEST_AUTO_CREATE_PLAYERS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_AUTO_CREATE_PLAYERS: %w", err)
	}
	defaultHand := strings.ToUpper(strings.TrimSpace(getEnv("INGEST_DEFAULT_HAND", "R")))
	if defaultHand != "R" && defaultHand != "L" {
		return Config{}, fmt.Errorf("invalid INGEST_DEFAULT_HAND %q: valid values are R, L", defaultHand)
	}
	dateFallback, err := strconv.ParseBool(getEnv("INGEST_DATE_FALLBACK_TODAY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_DATE_FALLBACK_TODAY: %w", err)
	}
	validThreshold, err := getEnvAsFloat("INGEST_VALID_THRESHOLD", 0.5)
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_VALID_THRESHOLD: %w", err)
	}
	if validThreshold <= 0 || validThreshold > 1 {
		return Config{}, fmt.Errorf("INGEST_VALID_THRESHOLD must be within (0,1]")
	}
	issueLimit, err := getEnvAsInt("INGEST_ISSUE_LIMIT", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_ISSUE_LIMIT: %w", err)
	}
	if issueLimit <= 0 {
		return Config{}, fmt.Errorf("INGEST_ISSUE_LIMIT must be > 0")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be >= 0")
	}

	breakerEnabled, err := strconv.ParseBool(getEnv("DB_BREAKER_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_BREAKER_ENABLED: %w", err)
	}
	breakerThreshold, err := getEnvAsInt("DB_BREAKER_FAILURE_THRESHOLD", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_BREAKER_FAILURE_THRESHOLD: %w", err)
	}
	breakerTimeout, err := time.ParseDuration(getEnv("DB_BREAKER_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_BREAKER_OPEN_TIMEOUT: %w", err)
	}
	breakerProbes, err := getEnvAsInt("DB_BREAKER_PROBE_LIMIT", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_BREAKER_PROBE_LIMIT: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "pitching-analytics"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DBURL:              strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),

		PprofEnabled: pprofEnabled,
		PprofAddr:    getEnv("PPROF_ADDR", "localhost:6060"),

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAppName:           getEnv("PYROSCOPE_APP_NAME", "pitching-analytics"),
		PyroscopeAuthToken:         getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     getEnv("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),

		IngestAutoCreatePlayers: autoCreate,
		IngestDefaultHand:       defaultHand,
		IngestDateFallbackToday: dateFallback,
		IngestValidThreshold:    validThreshold,
		IngestIssueLimit:        issueLimit,
		IngestSessionType:       getEnv("INGEST_SESSION_TYPE", "Bullpen"),

		CacheTTL: cacheTTL,

		DBBreakerEnabled:          breakerEnabled,
		DBBreakerFailureThreshold: breakerThreshold,
		DBBreakerOpenTimeout:      breakerTimeout,
		DBBreakerProbeLimit:       breakerProbes,
	}

	return cfg, nil
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

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
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

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
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
