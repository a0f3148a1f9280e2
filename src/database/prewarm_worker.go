package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"investments-api/pkg/logger"
)

const prewarmWorkerName = "DatabasePrewarm"

type PrewarmMode string

const (
	PrewarmDetached PrewarmMode = "detached"
	PrewarmInline   PrewarmMode = "inline"
	PrewarmDisabled PrewarmMode = "disabled"
)

func ParsePrewarmMode(s string) (PrewarmMode, error) {
	switch mode := PrewarmMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return PrewarmDetached, nil
	case PrewarmDetached, PrewarmInline, PrewarmDisabled:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown prewarm mode %q", s)
	}
}

// PrewarmWorker probes the database once and, if it answers, creates the
// schema. It only ever logs failures: the API has to stay up so /health
// and the diagnostics routes can be used to investigate.
type PrewarmWorker struct {
	db     *Database
	delay  time.Duration
	logger *logger.Logger
}

func NewPrewarmWorker(db *Database, delay time.Duration, log *logger.Logger) *PrewarmWorker {
	return &PrewarmWorker{db: db, delay: delay, logger: log}
}

func (w *PrewarmWorker) GetServiceName() string {
	return prewarmWorkerName
}

func (w *PrewarmWorker) StartService() {
	_ = w.Run(context.Background())
}

func (w *PrewarmWorker) Run(ctx context.Context) error {
	if w.delay > 0 {
		select {
		case <-time.After(w.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	w.logger.Info("Testing connection to database...")
	if err := w.db.CanConnect(ctx); err != nil {
		w.logger.Error(err, "Could not connect to database, serving without schema check")
		return err
	}
	w.logger.Info("Connection to database established")

	if err := w.db.EnsureCreated(ctx); err != nil {
		w.logger.Error(err, "Could not verify database tables")
		return err
	}
	w.logger.Info("Database tables verified/created")
	return nil
}
