package database

import (
	"errors"
	"strings"
)

var ErrConnectionStringMissing = errors.New("connection string not found: set DATABASE_URL or database.default_connection")

type ConnectionSource string

const (
	SourceEnvironment ConnectionSource = "DATABASE_URL"
	SourceConfig      ConnectionSource = "config"
)

type ResolvedConnection struct {
	ConnectionString string
	Source           ConnectionSource
}

// ResolveConnectionString picks the environment override first and the
// configured entry second. Blank values count as absent.
func ResolveConnectionString(override, fallback string) (ResolvedConnection, error) {
	if v := strings.TrimSpace(override); v != "" {
		return ResolvedConnection{ConnectionString: v, Source: SourceEnvironment}, nil
	}
	if v := strings.TrimSpace(fallback); v != "" {
		return ResolvedConnection{ConnectionString: v, Source: SourceConfig}, nil
	}
	return ResolvedConnection{}, ErrConnectionStringMissing
}
