package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	args := []string{
		"-c", "ignored.json",
		"-a", "127.0.0.1:9090", "-r", "sqlite", "-d", "file:agenda.db",
		"-p", "all", "-l", "warn", "-t", "30s",
		"-u", "user", "-k", "secret", "-b", "bucket", "-g", "eu-west-1", "-e", "http://minio:9000",
	}

	got := &Config{}
	require.NoError(t, parseFlags(got, args))

	want := &Config{
		EndpointAddrHTTP:   "127.0.0.1:9090",
		DatabaseDriver:     "sqlite",
		DatabaseDSN:        "file:agenda.db",
		DeleteConfirmation: "all",
		LogLevel:           "warn",
		ShutdownTimeout:    30 * time.Second,
		S3AccessKey:        "user",
		S3SecretKey:        "secret",
		S3Bucket:           "bucket",
		S3Region:           "eu-west-1",
		S3BaseEndpoint:     "http://minio:9000",
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestParseEnv_PortAndAddr(t *testing.T) {
	c := defaults()
	require.NoError(t, parseEnv(c, envMap(map[string]string{"PORT": "3000"})))
	assert.Equal(t, ":3000", c.EndpointAddrHTTP)

	c = defaults()
	require.NoError(t, parseEnv(c, envMap(map[string]string{"PORT": "3000", "HTTP_ADDR": "0.0.0.0:4000"})))
	assert.Equal(t, "0.0.0.0:4000", c.EndpointAddrHTTP)

	c = defaults()
	require.NoError(t, parseEnv(c, envMap(map[string]string{"LOG_LEVEL": "  "})))
	assert.Equal(t, "info", c.LogLevel)
}
