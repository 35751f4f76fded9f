// Package config loads per-concern configuration from the
// environment. Constructors fail loudly when a required variable is
// missing rather than limping along with a zero value.
package config

import (
	"fmt"
	"os"
)

func requireEnv(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%s env variable is not set", name)
	}
	return value, nil
}

func envOr(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

// Addr returns the listen address, defaulting to :8080.
func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	return ok && development != "0"
}
