package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/avolkov/photovault/internal/config"
	"github.com/avolkov/photovault/internal/repo"
)

// OpenTestDB connects to the postgres instance named by TEST_DB_HOST, runs
// migrations and wipes table contents so each test starts clean.
func OpenTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping postgres test")
	}
	conn, err := repo.Open(config.DatabaseConfig{
		Host:     host,
		Port:     5432,
		User:     "photovault",
		Password: "photovault_pass",
		DBName:   "photovault_test",
		SSLMode:  "disable",
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.ApplyMigrations(context.Background(), conn); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if _, err := conn.Exec(`TRUNCATE photos, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return conn, func() {
		_ = conn.Close()
	}
}
