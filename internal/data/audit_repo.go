package data

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhaverenterprises/uniform-admin/internal/data/database"
	"github.com/jhaverenterprises/uniform-admin/internal/data/pgxutil"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditRepo stores moderation decisions in Postgres.
type AuditRepo struct {
	DB *sql.DB
}

var _ ports.AuditRepository = (*AuditRepo)(nil)

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{DB: db}
}

type auditRow struct {
	ID         string            `db:"id"`
	Action     model.AuditAction `db:"action"`
	ResourceID string            `db:"resource_id"`
	Approved   bool              `db:"approved"`
	Note       string            `db:"note"`
	Operator   string            `db:"operator"`
	Role       string            `db:"role"`
	Outcome    string            `db:"outcome"`
	CreatedAt  time.Time         `db:"created_at"`
}

func (r auditRow) entry() model.AuditEntry {
	return model.AuditEntry{
		ID:         r.ID,
		Action:     r.Action,
		ResourceID: r.ResourceID,
		Approved:   r.Approved,
		Note:       r.Note,
		Operator:   r.Operator,
		Role:       r.Role,
		Outcome:    r.Outcome,
		CreatedAt:  r.CreatedAt,
	}
}

// Record appends an entry to the audit trail.
func (r *AuditRepo) Record(ctx context.Context, entry model.AuditEntry) error {
	if entry.Action == "" {
		return ErrAuditActionRequired
	}
	if strings.TrimSpace(entry.ResourceID) == "" {
		return ErrAuditResourceRequired
	}

	const q = `
		INSERT INTO action_audit (action, resource_id, approved, note, operator, role, outcome)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, q,
		string(entry.Action), entry.ResourceID, entry.Approved,
		entry.Note, entry.Operator, entry.Role, entry.Outcome,
	)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// List returns recent entries, newest first.
func (r *AuditRepo) List(ctx context.Context, opts ports.AuditListOptions) ([]model.AuditEntry, error) {
	limit := opts.Limit
	switch {
	case limit <= 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}

	listOpts := []database.ListQueryOption{
		database.WithColumns(auditColumns...),
		database.WithCondition(database.WhereCond("resource_id", database.Equal, opts.ResourceID)),
		database.WithCondition(database.WhereCond("action", database.Equal, string(opts.Action))),
		database.WithOrderBy("created_at", "DESC"),
		database.WithLimit(limit),
	}
	if op := strings.TrimSpace(opts.Operator); op != "" {
		listOpts = append(listOpts, database.WithCondition(
			database.WhereCond("operator", database.ILike, "%"+escapeLike(op)+"%")))
	}
	q, args := database.BuildListQuery(database.NewListQueryOptions("action_audit", listOpts...))

	var rows []auditRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		res, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		rows, err = pgx.CollectRows(res, pgx.RowToStructByName[auditRow])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	out := make([]model.AuditEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entry())
	}
	return out, nil
}

//nolint:gochecknoglobals // fixed projection of action_audit
var auditColumns = []string{
	"id::text", "action", "resource_id", "approved", "note", "operator", "role", "outcome", "created_at",
}

//nolint:gochecknoglobals // stateless replacer
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
