package service

import (
	"context"
	"fmt"
	"log/slog"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

const auditOK = "ok"

// Auditor records moderation decisions. A nil *Auditor, or one without a
// repository, records nothing. Recording failures are logged and never
// returned to the caller.
type Auditor struct {
	repo   ports.AuditRepository
	logger *slog.Logger
}

// NewAuditor wraps repo. Pass a nil repo to disable the audit trail.
func NewAuditor(repo ports.AuditRepository, logger *slog.Logger) *Auditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auditor{repo: repo, logger: logger.With("component", "audit")}
}

// Enabled reports whether decisions are persisted.
func (a *Auditor) Enabled() bool { return a != nil && a.repo != nil }

// Record stores one decision. outcome is the error returned by the action, if any.
func (a *Auditor) Record(ctx context.Context, action model.AuditAction, resourceID string, d model.Decision, outcome error) {
	if !a.Enabled() {
		return
	}
	entry := model.AuditEntry{
		Action:     action,
		ResourceID: resourceID,
		Approved:   d.Approve,
		Note:       d.Note,
		Outcome:    auditOK,
	}
	if ident, ok := domainauth.IdentityFromContext(ctx); ok {
		entry.Operator = ident.Name
		entry.Role = string(ident.Role)
	}
	if outcome != nil {
		entry.Outcome = outcome.Error()
	}
	// The action already finished; a cancelled request must not drop its record.
	if err := a.repo.Record(context.WithoutCancel(ctx), entry); err != nil {
		a.logger.ErrorContext(ctx, "failed to record audit entry",
			"action", action, "resource_id", resourceID, "error", err)
	}
}

// History lists the recorded decisions for one resource, newest first.
func (a *Auditor) History(ctx context.Context, resourceID string) ([]model.AuditEntry, error) {
	if !a.Enabled() {
		return nil, nil
	}
	entries, err := a.repo.List(ctx, ports.AuditListOptions{ResourceID: resourceID, Limit: 20})
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
