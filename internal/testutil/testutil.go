package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alicebob/miniredis/v2"
	// Import pgx driver for database/sql compatibility in tests.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/jhaverenterprises/uniform-admin/internal/migrate"
)

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Cleanup(func())
	Skip(args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
}

// SetupTestRedis starts an in-process Redis and returns a client connected to it.
// Both are torn down when the test ends.
func SetupTestRedis(t TestingTB) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.NewMiniRedis()
	if err := mr.Start(); err != nil {
		t.Fatal("start miniredis:", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		closeAndLog(t, "redis client", client)
		mr.Close()
	})
	return mr, client
}

// RunMigrations delegates to the shared migrate package to apply production migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db, nil)
}

// TestDBConfig holds configuration for the audit test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DefaultTestDBConfig returns default test database configuration.
// Defaults to port 55432 (local test DB from the docker-compose test profile).
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     getEnvOrDefault("TEST_DB_PORT", "55432"),
		User:     getEnvOrDefault("TEST_DB_USER", "uniform"),
		Password: getEnvOrDefault("TEST_DB_PASSWORD", "uniform"),
		DBName:   getEnvOrDefault("TEST_DB_NAME", "uniform_admin"),
	}
}

// DSN builds the connection string.
func (c TestDBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		c.User, c.Password, net.JoinHostPort(c.Host, c.Port), c.DBName)
}

// SetupTestDB connects to the test database, runs migrations and empties the
// audit table. The test is skipped when no database is reachable unless
// TEST_REQUIRE_DB is set.
func SetupTestDB(t TestingTB) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", DefaultTestDBConfig().DSN())
	if err != nil {
		skipOrFail(t, err)
		return nil
	}
	t.Cleanup(func() { closeAndLog(t, "test db", db) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		skipOrFail(t, pingErr)
		return nil
	}
	if migrateErr := RunMigrations(ctx, db); migrateErr != nil {
		t.Fatal("Failed to run migrations:", migrateErr)
	}
	if _, cleanErr := db.ExecContext(ctx, "DELETE FROM action_audit"); cleanErr != nil {
		t.Fatalf("Failed to clean up table action_audit: %v", cleanErr)
	}
	return db
}

func skipOrFail(t TestingTB, err error) {
	t.Helper()
	if requireDB() {
		t.Fatal("Test database not available:", err)
	}
	t.Skip("Test database not available:", err)
}

func closeAndLog(t TestingTB, name string, closer interface{ Close() error }) {
	if err := closer.Close(); err != nil {
		t.Logf("warning: failed to close %s: %v", name, err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

func requireDB() bool { return envBool("TEST_REQUIRE_DB") || envBool("TEST_REQUIRE_INFRA") }
