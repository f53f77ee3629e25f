package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/flagx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/timex"
)

// JsonConfig mirrors Config for decoding a JSON file. Durations accept
// either "10s" or integer nanoseconds. Zero values leave the target untouched.
type JsonConfig struct {
	EndpointAddrHTTP   string         `json:"endpoint_addr_http"`
	DatabaseDriver     string         `json:"database_driver"`
	DatabaseDSN        string         `json:"database_dsn"`
	DeleteConfirmation string         `json:"delete_confirmation"`
	LogLevel           string         `json:"log_level"`
	ShutdownTimeout    timex.Duration `json:"shutdown_timeout"`
	Argon2Memory       uint32         `json:"argon2_memory"`
	Argon2Iterations   uint32         `json:"argon2_iterations"`
	Argon2Parallelism  uint8          `json:"argon2_parallelism"`
	S3AccessKey        string         `json:"s3_access_key"`
	S3SecretKey        string         `json:"s3_secret_key"`
	S3Bucket           string         `json:"s3_bucket"`
	S3Region           string         `json:"s3_region"`
	S3BaseEndpoint     string         `json:"s3_base_endpoint"`
}

func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.DeleteConfirmation, c.DeleteConfirmation)
	setString(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.Argon2Memory != 0 {
		config.Argon2Memory = c.Argon2Memory
	}
	if c.Argon2Iterations != 0 {
		config.Argon2Iterations = c.Argon2Iterations
	}
	if c.Argon2Parallelism != 0 {
		config.Argon2Parallelism = c.Argon2Parallelism
	}
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
