package diagnostics

import (
	"context"

	"investments-api/src/database"

	"github.com/jackc/pgx/v5"
)

// Conn is one diagnostics session against the server.
type Conn interface {
	ServerVersion(ctx context.Context) (string, error)
	ExistingTables(ctx context.Context, schema string, names []string) ([]string, error)
	CountRows(ctx context.Context, schema, table string) (int64, error)
	Close(ctx context.Context) error
}

type Connector interface {
	Connect(ctx context.Context, connectionString string) (Conn, error)
}

// PgxConnector opens a dedicated pgx connection per call; nothing is pooled.
type PgxConnector struct{}

func (PgxConnector) Connect(ctx context.Context, connectionString string) (Conn, error) {
	cfg, err := database.ParseConnConfig(connectionString)
	if err != nil {
		return nil, err
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &pgxConn{conn: conn}, nil
}

type pgxConn struct {
	conn *pgx.Conn
}

func (c *pgxConn) ServerVersion(ctx context.Context) (string, error) {
	var version string
	err := c.conn.QueryRow(ctx, "SELECT version()").Scan(&version)
	return version, err
}

func (c *pgxConn) ExistingTables(ctx context.Context, schema string, names []string) ([]string, error) {
	rows, err := c.conn.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		AND table_name = ANY($2)
		ORDER BY table_name`, schema, names)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (c *pgxConn) CountRows(ctx context.Context, schema, table string) (int64, error) {
	var count int64
	query := "SELECT COUNT(*) FROM " + pgx.Identifier{schema, table}.Sanitize()
	err := c.conn.QueryRow(ctx, query).Scan(&count)
	return count, err
}

func (c *pgxConn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}
