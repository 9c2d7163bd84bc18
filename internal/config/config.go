package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/faceit-league-dashboard/internal/platform/logging"
)

const (
	DefaultFaceitAPIBaseURL    = "https://open.faceit.com/data/v4"
	DefaultFaceitWebAPIBaseURL = "https://www.faceit.com/api"
	DefaultLeagueID            = "a14b8616-45b9-4581-8637-4dfd0b5f6af8"
	DefaultRegionName          = "North America"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	PprofEnabled                bool
	PprofAddr                   string
	SwaggerEnabled              bool
	FaceitAPIKey                string
	FaceitAPIBaseURL            string
	FaceitWebAPIBaseURL         string
	FaceitTimeout               time.Duration
	FaceitMaxRetries            int
	FaceitCircuitEnabled        bool
	FaceitCircuitFailureCount   int
	FaceitCircuitOpenTimeout    time.Duration
	FaceitCircuitHalfOpenMaxReq int
	FaceitLeagueID              string
	FaceitRegionName            string
	FaceitStandingsPageSize     int
	FaceitFanoutLimit           int
	FaceitSummaryWorkers        int
	UptraceEnabled              bool
	UptraceDSN                  string
	UptraceLogsEnabled          bool
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
	LogLevel                    logging.Level
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

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	faceitAPIKey := strings.TrimSpace(getEnv("FACEIT_API_KEY", ""))
	if faceitAPIKey == "" && appEnv != EnvDev {
		return Config{}, fmt.Errorf("FACEIT_API_KEY is required when APP_ENV=%s", appEnv)
	}
	faceitTimeout, err := time.ParseDuration(getEnv("FACEIT_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_TIMEOUT: %w", err)
	}
	if faceitTimeout <= 0 {
		return Config{}, fmt.Errorf("FACEIT_TIMEOUT must be > 0")
	}
	faceitMaxRetries, err := getEnvAsInt("FACEIT_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_MAX_RETRIES: %w", err)
	}
	if faceitMaxRetries < 0 {
		return Config{}, fmt.Errorf("FACEIT_MAX_RETRIES must be >= 0")
	}
	faceitCircuitEnabled, err := strconv.ParseBool(getEnv("FACEIT_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_CIRCUIT_ENABLED: %w", err)
	}
	faceitCircuitFailureCount, err := getEnvAsInt("FACEIT_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if faceitCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FACEIT_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	faceitCircuitOpenTimeout, err := time.ParseDuration(getEnv("FACEIT_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if faceitCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FACEIT_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	faceitCircuitHalfOpenMaxReq, err := getEnvAsInt("FACEIT_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if faceitCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FACEIT_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	faceitStandingsPageSize, err := getEnvAsInt("FACEIT_STANDINGS_PAGE_SIZE", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_STANDINGS_PAGE_SIZE: %w", err)
	}
	if faceitStandingsPageSize < 1 {
		return Config{}, fmt.Errorf("FACEIT_STANDINGS_PAGE_SIZE must be >= 1")
	}
	faceitFanoutLimit, err := getEnvAsInt("FACEIT_FANOUT_LIMIT", 16)
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_FANOUT_LIMIT: %w", err)
	}
	if faceitFanoutLimit < 1 {
		return Config{}, fmt.Errorf("FACEIT_FANOUT_LIMIT must be >= 1")
	}
	faceitSummaryWorkers, err := getEnvAsInt("FACEIT_SUMMARY_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse FACEIT_SUMMARY_WORKERS: %w", err)
	}
	if faceitSummaryWorkers < 1 {
		return Config{}, fmt.Errorf("FACEIT_SUMMARY_WORKERS must be >= 1")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	// Division pages fan out to one summary call per team.
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "faceit-league-dashboard"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		SwaggerEnabled:              swaggerEnabled,
		FaceitAPIKey:                faceitAPIKey,
		FaceitAPIBaseURL:            strings.TrimSpace(getEnv("FACEIT_API_BASE_URL", DefaultFaceitAPIBaseURL)),
		FaceitWebAPIBaseURL:         strings.TrimSpace(getEnv("FACEIT_WEB_API_BASE_URL", DefaultFaceitWebAPIBaseURL)),
		FaceitTimeout:               faceitTimeout,
		FaceitMaxRetries:            faceitMaxRetries,
		FaceitCircuitEnabled:        faceitCircuitEnabled,
		FaceitCircuitFailureCount:   faceitCircuitFailureCount,
		FaceitCircuitOpenTimeout:    faceitCircuitOpenTimeout,
		FaceitCircuitHalfOpenMaxReq: faceitCircuitHalfOpenMaxReq,
		FaceitLeagueID:              strings.TrimSpace(getEnv("FACEIT_LEAGUE_ID", DefaultLeagueID)),
		FaceitRegionName:            strings.TrimSpace(getEnv("FACEIT_REGION_NAME", DefaultRegionName)),
		FaceitStandingsPageSize:     faceitStandingsPageSize,
		FaceitFanoutLimit:           faceitFanoutLimit,
		FaceitSummaryWorkers:        faceitSummaryWorkers,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		UptraceLogsEnabled:          uptraceLogsEnabled,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		LogLevel:                    logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
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

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
