package model

import "time"

// AuditAction names a recorded moderation decision.
type AuditAction string

const (
	AuditBillEdit        AuditAction = "bill_edit"
	AuditBillDelete      AuditAction = "bill_delete"
	AuditRaisedInventory AuditAction = "raised_inventory"
	AuditRefund          AuditAction = "refund"
	AuditShipment        AuditAction = "shipment"
)

// AuditEntry records who decided what on which resource.
type AuditEntry struct {
	ID         string      `json:"id"`
	Action     AuditAction `json:"action"`
	ResourceID string      `json:"resource_id"`
	Approved   bool        `json:"approved"`
	Note       string      `json:"note"`
	Operator   string      `json:"operator"`
	Role       string      `json:"role"`
	Outcome    string      `json:"outcome"`
	CreatedAt  time.Time   `json:"created_at"`
}
