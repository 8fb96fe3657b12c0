package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/signupd/internal/flagx"
	"github.com/dmitrijs2005/signupd/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Fields left out
// of the file keep their previous values.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	DatabaseDSN      *string         `json:"database_dsn"`
	DatabaseDialect  *string         `json:"database_dialect"`
	MaxConnections   *int            `json:"max_connections"`
	StaticPath       *string         `json:"static_path"`
	PasswordHasher   *string         `json:"password_hasher"`
	LogBackend       *string         `json:"log_backend"`
	LogLevel         *string         `json:"log_level"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the JSON file given with -c or -config.
// Without the flag nothing is loaded. An unreadable file or invalid JSON
// panics: the process cannot start with a config it cannot read.
func parseJson(config *Config, args []string) {
	path, _ := flagx.ConfigFiles(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.DatabaseDialect, c.DatabaseDialect)
	setIf(&config.MaxConnections, c.MaxConnections)
	setIf(&config.StaticPath, c.StaticPath)
	setIf(&config.PasswordHasher, c.PasswordHasher)
	setIf(&config.LogBackend, c.LogBackend)
	setIf(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
