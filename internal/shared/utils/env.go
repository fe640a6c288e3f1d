package utils

import "os"

// GetEnv reads an environment variable, falling back to def when unset.
func GetEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
