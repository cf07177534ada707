package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port                   string
	Env                    string
	CORSAllowOrigin        []string
	HistoryBackend         string
	HistoryDir             string
	DatabaseURL            string
	AnalyzerURL            string
	AnalyzerTimeoutSeconds int
	MaxUploadBytes         int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:                   getEnv("PORT", "5001"),
		Env:                    normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:        splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		HistoryBackend:         normalizeBackend(getEnv("HISTORY_BACKEND", "sqlite")),
		HistoryDir:             getEnv("HISTORY_DIR", "./data"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		AnalyzerURL:            strings.TrimRight(strings.TrimSpace(os.Getenv("ANALYZER_URL")), "/"),
		AnalyzerTimeoutSeconds: getEnvInt("ANALYZER_TIMEOUT_SECONDS", 60),
		MaxUploadBytes:         int64(getEnvInt("MAX_UPLOAD_BYTES", 20<<20)),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "memory":
		return "memory"
	case "file":
		return "file"
	case "postgres", "pg":
		return "postgres"
	default:
		return "sqlite"
	}
}
