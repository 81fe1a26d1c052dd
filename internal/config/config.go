package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TimeLimit time.Duration
	LogLevel  string
}

// Load reads optional overrides from the environment (and a .env file if
// one exists). Anything unset or unparsable falls back to the defaults.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		TimeLimit: getenvSeconds("MATH_QUIZ_TIME_LIMIT", DefaultTimeLimit),
		LogLevel:  getenvDefault("MATH_QUIZ_LOG_LEVEL", LogLevelInfo),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvSeconds(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
