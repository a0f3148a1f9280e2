package database

import (
	"context"
	"fmt"
	"time"

	"investments-api/pkg/logger"
	"investments-api/src/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultConnectTimeout = 10 * time.Second

type Options struct {
	Retry           RetryPolicy
	CommandTimeout  time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Verbose         bool
}

func DefaultOptions() Options {
	return Options{
		Retry:           DefaultRetryPolicy(),
		CommandTimeout:  60 * time.Second,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// Database is the gorm pool shared by repositories, with the retry policy
// and per-command timeout every caller is expected to honour.
type Database struct {
	DB             *gorm.DB
	Retry          RetryPolicy
	CommandTimeout time.Duration
}

func New(db *gorm.DB, opts Options) *Database {
	return &Database{
		DB:             db,
		Retry:          opts.Retry,
		CommandTimeout: opts.CommandTimeout,
	}
}

// OpenPostgres builds the pool without touching the network, so an
// unreachable server does not stop the process from starting.
func OpenPostgres(connectionString string, opts Options, log *logger.Logger) (*Database, error) {
	cfg, err := ParseConnConfig(connectionString)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	sqlDB := stdlib.OpenDB(*cfg)
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		TranslateError:       true,
		Logger:               NewGormLogger(log, opts.Verbose),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return New(db, opts), nil
}

// Session returns a handle bound to ctx with the command timeout applied.
func (d *Database) Session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if d.CommandTimeout <= 0 {
		return d.DB.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, d.CommandTimeout)
	return d.DB.WithContext(ctx), cancel
}

// CanConnect pings the server through the retry policy.
func (d *Database) CanConnect(ctx context.Context) error {
	return d.Retry.Do(ctx, d.Ping)
}

// Ping is a single probe bounded by the command timeout, without retries.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	if d.CommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.CommandTimeout)
		defer cancel()
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ParseConnConfig parses a URL or keyword/value connection string. It
// applies a connect timeout when none is given, pins search_path to the
// mapped schema and uses unnamed statements, which the Supabase
// transaction pooler requires.
func ParseConnConfig(connectionString string) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(connectionString)
	if err != nil {
		return nil, err
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	cfg.RuntimeParams["search_path"] = model.Schema
	cfg.DefaultQueryExecMode = pgx.QueryExecModeExec
	return cfg, nil
}
