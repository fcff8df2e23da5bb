package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                 string
	DBPath               string
	LogLevel             string
	UploadDir            string
	ImportWorkerCount    int
	ImportQueueSize      int
	SessionTTLMinutes    int
	MaxQuestionsPerBatch int
	DefaultTestQuestions int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBPath:               envOr("DB_PATH", "file:lexiflash.db"),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		UploadDir:            envOr("UPLOAD_DIR", ""),
		ImportWorkerCount:    envIntOr("IMPORT_WORKER_COUNT", 2),
		ImportQueueSize:      envIntOr("IMPORT_QUEUE_SIZE", 32),
		SessionTTLMinutes:    envIntOr("SESSION_TTL_MINUTES", 60),
		MaxQuestionsPerBatch: envIntOr("MAX_QUESTIONS_PER_BATCH", 7),
		DefaultTestQuestions: envIntOr("DEFAULT_TEST_QUESTIONS", 10),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.ImportWorkerCount <= 0 {
		problems = append(problems, "IMPORT_WORKER_COUNT must be positive")
	}
	if c.ImportQueueSize <= 0 {
		problems = append(problems, "IMPORT_QUEUE_SIZE must be positive")
	}
	if c.SessionTTLMinutes <= 0 {
		problems = append(problems, "SESSION_TTL_MINUTES must be positive")
	}
	if c.MaxQuestionsPerBatch <= 0 {
		problems = append(problems, "MAX_QUESTIONS_PER_BATCH must be positive")
	}
	if c.DefaultTestQuestions <= 0 {
		problems = append(problems, "DEFAULT_TEST_QUESTIONS must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
