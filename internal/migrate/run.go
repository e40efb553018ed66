// Package migrate applies the audit trail schema.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// versionTable records applied versions of the audit schema.
const versionTable = "audit_schema_versions"

// lockKey serialises concurrent runners started by several console replicas.
const lockKey int64 = 0x61756469745f7631

// Runner applies the embedded audit migrations in filename order.
type Runner struct {
	db     *sql.DB
	fsys   fs.FS
	dir    string
	logger *slog.Logger
}

// New returns a Runner over the embedded migrations. A nil logger falls back
// to slog.Default.
func New(db *sql.DB, logger *slog.Logger) *Runner {
	if db == nil {
		panic("migrate: db is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		db:     db,
		fsys:   migrationsFS,
		dir:    "migrations",
		logger: logger.With("component", "audit_migrations"),
	}
}

// Run applies pending migrations and discards the list of applied versions.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	_, err := New(db, logger).Apply(ctx)
	return err
}

// Versions lists the .sql files under dir as versions, sorted.
func Versions(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".sql"))
	}
	sort.Strings(out)
	return out, nil
}

// Apply brings the schema up to date and returns the versions it applied.
// Calling it again is a no-op.
func (r *Runner) Apply(ctx context.Context) ([]string, error) {
	if _, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+versionTable+` (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return nil, fmt.Errorf("create %s: %w", versionTable, err)
	}

	versions, err := Versions(r.fsys, r.dir)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, v := range versions {
		ok, applyErr := r.applyOne(ctx, v)
		if applyErr != nil {
			return applied, applyErr
		}
		if ok {
			applied = append(applied, v)
		}
	}
	return applied, nil
}

// applyOne runs a single version inside its own transaction. The advisory
// lock is held until commit, so a second replica waits and then sees the
// version as recorded.
func (r *Runner) applyOne(ctx context.Context, version string) (bool, error) {
	body, err := fs.ReadFile(r.fsys, path.Join(r.dir, version+".sql"))
	if err != nil {
		return false, fmt.Errorf("read migration %s: %w", version, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin migration %s: %w", version, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			r.logger.ErrorContext(ctx, "rollback migration", "version", version, "error", rbErr)
		}
	}()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
		return false, fmt.Errorf("lock migration %s: %w", version, err)
	}

	var done bool
	if err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM `+versionTable+` WHERE version = $1)`, version,
	).Scan(&done); err != nil {
		return false, fmt.Errorf("check migration %s: %w", version, err)
	}
	if done {
		return false, nil
	}

	if _, err = tx.ExecContext(ctx, string(body)); err != nil {
		return false, fmt.Errorf("exec migration %s: %w", version, err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO `+versionTable+` (version) VALUES ($1)`, version,
	); err != nil {
		return false, fmt.Errorf("record migration %s: %w", version, err)
	}
	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit migration %s: %w", version, err)
	}

	r.logger.InfoContext(ctx, "applied audit migration", "version", version)
	return true, nil
}
