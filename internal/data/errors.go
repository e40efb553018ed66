package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrAuditActionRequired   = errors.New("audit action is required")
	ErrAuditResourceRequired = errors.New("audit resource id is required")
)
