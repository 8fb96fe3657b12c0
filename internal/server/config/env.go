package config

import (
	"errors"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/signupd/internal/flagx"
)

// loadDotenv exports the variables of the -env file (default .env) into the
// process environment. Variables already set win; a missing file is fine.
func loadDotenv(args []string) {
	_, path := flagx.ConfigFiles(args)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

// parseEnv overlays values from environment variables:
//
//	HOSTNAME, PORT        listener host and port
//	DATABASE_URL          database DSN
//	DATABASE_DIALECT      postgres | sqlite | mysql
//	MAX_CONNECTIONS_DB    pool size
//	STATIC_PATH           static files directory
//	PASSWORD_HASHER       sha512 | bcrypt
//	LOG_BACKEND           slog | logrus
//	LOG_LEVEL             debug | info | warn | error
//	SHUTDOWN_TIMEOUT      Go duration, e.g. "15s"
//
// Unparseable numbers and durations are ignored.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	host, hasHost := lookup("HOSTNAME")
	port, hasPort := lookup("PORT")
	if hasHost || hasPort {
		curHost, curPort, err := net.SplitHostPort(config.EndpointAddrHTTP)
		if err != nil {
			curHost, curPort = "", config.EndpointAddrHTTP
		}
		if !hasHost {
			host = curHost
		}
		if !hasPort {
			port = curPort
		}
		config.EndpointAddrHTTP = net.JoinHostPort(host, port)
	}

	envString(lookup, "DATABASE_URL", &config.DatabaseDSN)
	envString(lookup, "DATABASE_DIALECT", &config.DatabaseDialect)
	envString(lookup, "STATIC_PATH", &config.StaticPath)
	envString(lookup, "PASSWORD_HASHER", &config.PasswordHasher)
	envString(lookup, "LOG_BACKEND", &config.LogBackend)
	envString(lookup, "LOG_LEVEL", &config.LogLevel)

	if v, ok := lookup("MAX_CONNECTIONS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.MaxConnections = n
		}
	}

	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.ShutdownTimeout = d
		}
	}
}

func envString(lookup func(string) (string, bool), key string, dst *string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}
