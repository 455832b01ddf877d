package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rkl-hq/season-engine/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the engine. League math knobs live
// here too so deployments can override them without a rebuild; they default to
// the historical league constants.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	DBURL string

	RegularSeasonGames  int
	ReplacementFactor   float64
	WinThresholdFactor  float64
	SortscorePAMEpsilon float64
	WriteBatchSize      int
	RecomputeMaxWorkers int

	InternalJobToken string

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	QStashEnabled            bool
	QStashBaseURL            string
	QStashToken              string
	QStashTargetBaseURL      string
	QStashRetries            int
	QStashCircuitEnabled     bool
	QStashCircuitFailures    int
	QStashCircuitOpenTimeout time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	seasonGames, err := getEnvAsInt("REGULAR_SEASON_GAMES", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse REGULAR_SEASON_GAMES: %w", err)
	}
	if seasonGames < 1 {
		return Config{}, fmt.Errorf("REGULAR_SEASON_GAMES must be >= 1")
	}

	replacementFactor, err := getEnvAsFloat("REPLACEMENT_FACTOR", 0.9)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPLACEMENT_FACTOR: %w", err)
	}
	winThresholdFactor, err := getEnvAsFloat("WIN_THRESHOLD_FACTOR", 0.92)
	if err != nil {
		return Config{}, fmt.Errorf("parse WIN_THRESHOLD_FACTOR: %w", err)
	}
	sortscoreEpsilon, err := getEnvAsFloat("SORTSCORE_PAM_EPSILON", 1e-8)
	if err != nil {
		return Config{}, fmt.Errorf("parse SORTSCORE_PAM_EPSILON: %w", err)
	}
	if replacementFactor <= 0 || winThresholdFactor <= 0 || sortscoreEpsilon <= 0 {
		return Config{}, fmt.Errorf("league factors must be > 0")
	}

	writeBatchSize, err := getEnvAsInt("WRITE_BATCH_SIZE", 400)
	if err != nil {
		return Config{}, fmt.Errorf("parse WRITE_BATCH_SIZE: %w", err)
	}
	if writeBatchSize < 1 {
		return Config{}, fmt.Errorf("WRITE_BATCH_SIZE must be >= 1")
	}

	recomputeWorkers, err := getEnvAsInt("RECOMPUTE_MAX_WORKERS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse RECOMPUTE_MAX_WORKERS: %w", err)
	}
	if recomputeWorkers < 1 {
		return Config{}, fmt.Errorf("RECOMPUTE_MAX_WORKERS must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	if uptraceEnabled && strings.TrimSpace(getEnv("UPTRACE_DSN", "")) == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeEnabled && strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")) == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	qstashEnabled, err := strconv.ParseBool(getEnv("QSTASH_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse QSTASH_ENABLED: %w", err)
	}
	qstashRetries, err := getEnvAsInt("QSTASH_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse QSTASH_RETRIES: %w", err)
	}
	qstashCircuitEnabled, err := strconv.ParseBool(getEnv("QSTASH_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse QSTASH_CIRCUIT_ENABLED: %w", err)
	}
	qstashCircuitFailures, err := getEnvAsInt("QSTASH_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse QSTASH_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	qstashCircuitOpenTimeout, err := time.ParseDuration(getEnv("QSTASH_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse QSTASH_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if qstashEnabled {
		if strings.TrimSpace(getEnv("QSTASH_BASE_URL", "")) == "" {
			return Config{}, fmt.Errorf("QSTASH_BASE_URL is required when QSTASH_ENABLED=true")
		}
		if strings.TrimSpace(getEnv("QSTASH_TOKEN", "")) == "" {
			return Config{}, fmt.Errorf("QSTASH_TOKEN is required when QSTASH_ENABLED=true")
		}
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "season-engine"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		DBURL: strings.TrimSpace(getEnv("DB_URL", "")),

		RegularSeasonGames:  seasonGames,
		ReplacementFactor:   replacementFactor,
		WinThresholdFactor:  winThresholdFactor,
		SortscorePAMEpsilon: sortscoreEpsilon,
		WriteBatchSize:      writeBatchSize,
		RecomputeMaxWorkers: recomputeWorkers,

		InternalJobToken: strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),

		PprofEnabled: pprofEnabled,
		PprofAddr:    getEnv("PPROF_ADDR", "localhost:6060"),

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     strings.TrimSpace(getEnv("UPTRACE_DSN", "")),

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", "season-engine"),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,

		QStashEnabled:            qstashEnabled,
		QStashBaseURL:            strings.TrimSpace(getEnv("QSTASH_BASE_URL", "")),
		QStashToken:              strings.TrimSpace(getEnv("QSTASH_TOKEN", "")),
		QStashTargetBaseURL:      strings.TrimSpace(getEnv("QSTASH_TARGET_BASE_URL", "")),
		QStashRetries:            qstashRetries,
		QStashCircuitEnabled:     qstashCircuitEnabled,
		QStashCircuitFailures:    qstashCircuitFailures,
		QStashCircuitOpenTimeout: qstashCircuitOpenTimeout,
	}, nil
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

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
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
	return strconv.Atoi(value)
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}
