package dbtest

import (
	"os"
	"testing"

	"investments-api/pkg/logger"
	"investments-api/src/database"
	"investments-api/src/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const TestDbEnvKey = "TEST_DB_CONNECTION_STRING"

// NewSqliteTestDB returns an isolated, migrated in-memory database with
// foreign keys enforced.
func NewSqliteTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying *sql.DB: %v", err)
	}
	// every pooled connection to :memory: would be a separate database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Errorf("Failed to close database connection: %v", err)
		}
	})

	return database.New(db, database.DefaultOptions())
}

// GetPostgresTestDB connects to TEST_DB_CONNECTION_STRING and skips the
// test when it is not set.
func GetPostgresTestDB(t *testing.T) (*database.Database, string) {
	t.Helper()

	dbConnString := os.Getenv(TestDbEnvKey)
	if dbConnString == "" {
		t.Skipf("%s not set, skipping postgres integration test", TestDbEnvKey)
	}

	db, err := database.OpenPostgres(dbConnString, database.DefaultOptions(), logger.New().WithOutput(os.Stderr))
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close database connection: %v", err)
		}
	})

	return db, dbConnString
}
