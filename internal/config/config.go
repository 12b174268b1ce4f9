package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Port           string
	AllowedOrigins []string

	StoreDriver string
	DataFile    string
	SQLitePath  string
	MongoURI    string
	MongoDB     string

	LogLevel string
	LogFile  string

	LLMAPIKey   string
	LLMBaseURL  string
	ModelName   string
	MaxTokens   int
	Temperature float64
	LLMTimeout  time.Duration
	PromptsFile string

	RemindersEnabled bool
	ReminderSchedule string
}

// LoadConfig loads .env (if present) and builds a Config from the environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using process environment")
	}

	return &Config{
		Port:           getEnv("PORT", "8000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "json")),
		DataFile:    getEnv("DATA_FILE", "data/habits.json"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/habits.db"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "healthhabit"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),

		LLMAPIKey:   os.Getenv("TOGETHER_API_KEY"),
		LLMBaseURL:  getEnv("LLM_BASE_URL", "https://api.together.xyz/v1"),
		ModelName:   getEnv("MODEL_NAME", "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"),
		MaxTokens:   getEnvInt("MAX_TOKENS", 4096),
		Temperature: getEnvFloat("TEMPERATURE", 0.7),
		LLMTimeout:  getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		PromptsFile: os.Getenv("PROMPTS_FILE"),

		RemindersEnabled: getEnvBool("REMINDERS_ENABLED", true),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "@every 1m"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
