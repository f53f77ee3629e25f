package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays settings from environment variables:
//
//	PORT                 HTTP port, bound on all interfaces
//	HTTP_ADDR            full bind address (wins over PORT)
//	DATABASE_DRIVER      pgx | sqlite
//	DATABASE_URL         DSN
//	DELETE_CONFIRMATION  contacts | all
//	LOG_LEVEL            debug | info | warn | error
//	SHUTDOWN_TIMEOUT     Go duration, e.g. "15s"
//	S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET, S3_REGION, S3_ENDPOINT
func parseEnv(config *Config, lookupEnv func(string) (string, bool)) error {
	if lookupEnv == nil {
		return nil
	}

	get := func(key string) (string, bool) {
		v, ok := lookupEnv(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		config.EndpointAddrHTTP = ":" + v
	}
	if v, ok := get("HTTP_ADDR"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := get("DATABASE_DRIVER"); ok {
		config.DatabaseDriver = v
	}
	if v, ok := get("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := get("DELETE_CONFIRMATION"); ok {
		config.DeleteConfirmation = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		config.LogLevel = v
	}
	if v, ok := get("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		config.ShutdownTimeout = d
	}
	if v, ok := get("S3_ACCESS_KEY"); ok {
		config.S3AccessKey = v
	}
	if v, ok := get("S3_SECRET_KEY"); ok {
		config.S3SecretKey = v
	}
	if v, ok := get("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := get("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := get("S3_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}

	return nil
}
