package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds launcher configuration
type Config struct {
	Port         string
	Command      []string
	WorkDir      string
	StartupDelay time.Duration
	ExecHandoff  bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	port := GetEnvOrDefault("PORT", "8080")
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		// The value is opaque to the launcher; the application decides what
		// to do with it. Warn, but pass it through untouched.
		log.Printf("⚠️  [WARNING] PORT '%s' is not a valid port number", port)
	}

	command := strings.Fields(GetEnvOrDefault("APP_COMMAND", "python3 main.py"))
	if len(command) == 0 {
		log.Fatalf("💥 [FATAL] APP_COMMAND must name an executable")
	}

	var delay time.Duration
	if raw := os.Getenv("STARTUP_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("⚠️  [WARNING] ignoring unparseable STARTUP_DELAY '%s': %v", raw, err)
		} else if d > 0 {
			delay = d
		}
	}

	return &Config{
		Port:         port,
		Command:      command,
		WorkDir:      os.Getenv("APP_DIR"),
		StartupDelay: delay,
		ExecHandoff:  GetEnvAsBool("LAUNCHER_EXEC", true),
	}
}

// GetEnvOrDefault returns environment variable value or default
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsBool parses environment variable as boolean
func GetEnvAsBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		value = strings.ToLower(value)
		if value == "true" || value == "1" || value == "yes" {
			return true
		}
		if value == "false" || value == "0" || value == "no" {
			return false
		}
	}
	return defaultValue
}
