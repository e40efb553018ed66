package ports

import (
	"context"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
)

// InvoiceRenderer produces printable invoices.
type InvoiceRenderer interface {
	RenderBill(ctx context.Context, bill model.BillDetails) ([]byte, error)
	RenderOrder(ctx context.Context, order model.OrderDetails) ([]byte, error)
}

// Document is a file delivered to a customer.
type Document struct {
	Phone    string
	Filename string
	MIMEType string
	Content  []byte
}

// DocumentSender delivers documents to customers over a messaging channel.
type DocumentSender interface {
	SendDocument(ctx context.Context, doc Document) error
}

// AuditRepository records moderation decisions.
type AuditRepository interface {
	Record(ctx context.Context, entry model.AuditEntry) error
	List(ctx context.Context, opts AuditListOptions) ([]model.AuditEntry, error)
}

// AuditListOptions filters the audit trail.
type AuditListOptions struct {
	ResourceID string
	Action     model.AuditAction
	// Operator matches a case-insensitive substring of the operator name.
	Operator string
	Limit    int
}
