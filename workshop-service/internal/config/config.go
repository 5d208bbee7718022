package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all configuration for the workshop runner
type Config struct {
	AccountsFile string
	RandomUsers  int
	OldWomanAge  int
	// RandomSeed of 0 means the random source is seeded from the clock.
	RandomSeed uint64
}

// Load loads configuration from environment variables with default values
func Load() *Config {
	return &Config{
		AccountsFile: getEnv("ACCOUNTS_FILE", "accounts.txt"),
		RandomUsers:  getEnvInt("RANDOM_USERS", 4),
		OldWomanAge:  getEnvInt("OLD_WOMAN_AGE", 50),
		RandomSeed:   getEnvUint("RANDOM_SEED", 0),
	}
}

// getEnv retrieves an environment variable or returns a default value if not set
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d: %v", key, value, defaultValue, err)
		return defaultValue
	}
	return n
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d: %v", key, value, defaultValue, err)
		return defaultValue
	}
	return n
}
