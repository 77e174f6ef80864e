package repository

import (
	"context"

	"hotelier-service/internal/domain/entity"
)

// AuditRepository defines the interface for the lifecycle audit trail
type AuditRepository interface {
	Record(ctx context.Context, entry *entity.AuditEntry) error
}
