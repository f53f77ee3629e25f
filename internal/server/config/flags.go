package config

import (
	"flag"
	"io"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string    HTTP bind address (e.g. ":8080")
//	-r string    database driver: pgx | sqlite
//	-d string    database DSN
//	-p string    delete confirmation policy: contacts | all
//	-l string    log level
//	-t duration  graceful shutdown timeout
//	-u string    S3 access key
//	-k string    S3 secret key
//	-b string    S3 bucket (enables export archiving)
//	-g string    S3 region
//	-e string    S3 base endpoint
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-r", "-d", "-p", "-l", "-t", "-u", "-k", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver (pgx or sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DeleteConfirmation, "p", config.DeleteConfirmation, "delete confirmation policy (contacts or all)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "k", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket for export archive")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	return fs.Parse(args)
}
