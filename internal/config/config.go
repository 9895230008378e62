// Package config is a thin layer over environment variables; .env loading
// happens in the binaries via godotenv before any Get call.
package config

import "os"

// Get returns the variable's value, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
