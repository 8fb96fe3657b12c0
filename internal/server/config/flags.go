package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/signupd/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   database DSN
//	-k string   database dialect
//	-m int      connection pool size
//	-f string   static files directory
//	-p string   password hasher
//	-l string   log backend
//	-v string   log level
//	-t int      shutdown timeout, seconds
//
// Args are filtered with flagx.FilterArgs first so the config-file flags
// (-c, -env) do not break parsing. Parse errors panic.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-k", "-m", "-f", "-p", "-l", "-v", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseDialect, "k", config.DatabaseDialect, "database dialect (postgres, sqlite, mysql)")
	fs.IntVar(&config.MaxConnections, "m", config.MaxConnections, "max database connections")
	fs.StringVar(&config.StaticPath, "f", config.StaticPath, "static files directory")
	fs.StringVar(&config.PasswordHasher, "p", config.PasswordHasher, "password hasher (sha512, bcrypt)")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog, logrus)")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
