package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override file settings.
const (
	EnvLogLevel      = "VM_LOG_LEVEL"
	EnvLogPath       = "VM_LOG_PATH"
	EnvMaxConcurrent = "VM_MAX_CONCURRENT"
	EnvHeadless      = "VM_HEADLESS"
	EnvUseBrowser    = "VM_USE_BROWSER"
)

// ApplyEnv overrides settings with VM_* environment variables.
//
// Call it after godotenv.Load so values from a .env file are visible:
//
//	_ = godotenv.Load()
//	settings, _ := config.Load("virtualmoments.json")
//	if err := settings.ApplyEnv(); err != nil {
//	    log.Fatal(err)
//	}
//
// Unset or empty variables leave the current value untouched.
func (s *Settings) ApplyEnv() error {
	if v := env(EnvLogLevel); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := env(EnvLogPath); v != "" {
		s.LogPath = v
	}
	if v := env(EnvMaxConcurrent); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid %s %q: must be a positive integer", EnvMaxConcurrent, v)
		}
		s.MaxConcurrentRequests = n
	}
	if v := env(EnvHeadless); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvHeadless, v, err)
		}
		s.Headless = b
	}
	if v := env(EnvUseBrowser); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvUseBrowser, v, err)
		}
		s.UseBrowser = b
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
