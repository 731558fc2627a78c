package utils

import (
	"os"
)

// GetEnv retrieves an environment variable, returning def when missing.
func GetEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
