package diagnostics

import (
	"context"
	"strings"
	"time"

	"investments-api/pkg/logger"
	"investments-api/src/database"
	"investments-api/src/model"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var suggestions = []string{
	"Check that the Supabase instance is online",
	"Confirm the credentials in the connection string",
	"Check that the tables were created",
	"Test network connectivity to the database host",
}

type DatabaseInfo struct {
	Version  string `json:"version"`
	Host     string `json:"host"`
	Provider string `json:"provider"`
}

type TablesInfo struct {
	Existing []string         `json:"existing"`
	Counts   map[string]int64 `json:"counts"`
}

type ConnectionReport struct {
	Status           string       `json:"status"`
	Message          string       `json:"message"`
	Database         DatabaseInfo `json:"database"`
	Tables           TablesInfo   `json:"tables"`
	Timestamp        time.Time    `json:"timestamp"`
	ConnectionString string       `json:"connection_string"`
}

type TablesReport struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	ExistingTables []string `json:"existing_tables"`
}

type FormatProbeResult struct {
	Test             int    `json:"test"`
	Status           string `json:"status"`
	Message          string `json:"message,omitempty"`
	Kind             string `json:"kind,omitempty"`
	ConnectionString string `json:"connection_string"`
}

// Service runs the database diagnostics. It is created once at startup and
// shared by every request; each call opens and closes its own connection.
type Service struct {
	Connector        Connector
	ConnectionString string
	Host             string
	Candidates       []string
	Redactor         Redactor
	Timeout          time.Duration
	Logger           *logger.Logger
	Now              func() time.Time
}

func NewService(connectionString string, log *logger.Logger, options ...func(*Service)) *Service {
	s := &Service{
		Connector:        PgxConnector{},
		ConnectionString: connectionString,
		Timeout:          30 * time.Second,
		Logger:           log,
		Now:              func() time.Time { return time.Now().UTC() },
	}
	if cfg, err := database.ParseConnConfig(connectionString); err == nil {
		s.Host = cfg.Host
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Service) TestConnection(ctx context.Context) (ConnectionReport, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	safeConnectionString := s.Redactor.Redact(s.ConnectionString)
	s.Logger.Infof("Testing connection: %s", safeConnectionString)

	conn, err := s.Connector.Connect(ctx, s.ConnectionString)
	if err != nil {
		return ConnectionReport{}, s.fail(err, true)
	}
	defer s.close(conn)
	s.Logger.Info("Connection opened successfully")

	version, err := conn.ServerVersion(ctx)
	if err != nil {
		return ConnectionReport{}, s.fail(err, true)
	}

	existing, err := conn.ExistingTables(ctx, model.Schema, model.KnownTables())
	if err != nil {
		return ConnectionReport{}, s.fail(err, true)
	}
	if existing == nil {
		existing = []string{}
	}

	counts := make(map[string]int64, len(existing))
	for _, table := range existing {
		count, err := conn.CountRows(ctx, model.Schema, table)
		if err != nil {
			return ConnectionReport{}, s.fail(err, true)
		}
		counts[table] = count
	}

	host := s.Host
	return ConnectionReport{
		Status:  StatusSuccess,
		Message: "Connection established successfully",
		Database: DatabaseInfo{
			Version:  s.Redactor.Redact(version),
			Host:     s.Redactor.Redact(host),
			Provider: provider(host),
		},
		Tables: TablesInfo{
			Existing: existing,
			Counts:   counts,
		},
		Timestamp:        s.Now(),
		ConnectionString: safeConnectionString,
	}, nil
}

func (s *Service) TestTables(ctx context.Context) (TablesReport, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	conn, err := s.Connector.Connect(ctx, s.ConnectionString)
	if err != nil {
		return TablesReport{}, s.fail(err, false)
	}
	defer s.close(conn)

	tables, err := conn.ExistingTables(ctx, model.Schema, model.KnownTables())
	if err != nil {
		return TablesReport{}, s.fail(err, false)
	}
	if tables == nil {
		tables = []string{}
	}

	return TablesReport{
		Status:         StatusSuccess,
		Message:        "Tables checked successfully",
		ExistingTables: tables,
	}, nil
}

// TestFormats tries every candidate in order and reports each outcome; it
// has no failure mode of its own.
func (s *Service) TestFormats(ctx context.Context) []FormatProbeResult {
	results := make([]FormatProbeResult, 0, len(s.Candidates))

	for i, candidate := range s.Candidates {
		result := FormatProbeResult{
			Test:             i + 1,
			ConnectionString: s.Redactor.Redact(candidate),
		}

		if err := s.probe(ctx, candidate); err != nil {
			result.Status = StatusError
			result.Message = s.Redactor.Redact(err.Error())
			result.Kind = Classify(err).String()
			s.Logger.Warnf("Format probe %d failed: %s", result.Test, result.Message)
		} else {
			result.Status = StatusSuccess
		}

		results = append(results, result)
	}

	return results
}

func (s *Service) probe(ctx context.Context, candidate string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	conn, err := s.Connector.Connect(ctx, candidate)
	if err != nil {
		return err
	}
	return conn.Close(ctx)
}

func (s *Service) fail(err error, withSuggestions bool) error {
	message := s.Redactor.Redact(err.Error())
	s.Logger.Errorf(nil, "Connection error: %s", message)

	failure := &Failure{
		Status:    StatusError,
		Message:   message,
		Kind:      Classify(err),
		Timestamp: s.Now(),
	}
	if withSuggestions {
		failure.Suggestions = append([]string(nil), suggestions...)
	}
	return failure
}

func (s *Service) close(conn Conn) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Close(ctx); err != nil {
		s.Logger.Warnf("Closing diagnostics connection failed: %s", s.Redactor.Redact(err.Error()))
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Timeout)
}

func provider(host string) string {
	if strings.Contains(host, "supabase") {
		return "Supabase PostgreSQL"
	}
	return "PostgreSQL"
}
