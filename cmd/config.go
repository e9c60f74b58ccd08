package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RequestTTL bounds how long a pending exchange request may wait for
	// the provider before the sweep job rejects it.
	RequestTTL time.Duration

	// ReactivationPolicy is "owner_only" or "owner_or_admin".
	ReactivationPolicy string
}
