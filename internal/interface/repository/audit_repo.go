package repository

import (
	"context"
	"time"

	"hotelier-service/internal/domain/entity"
	"hotelier-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAuditRepository implements the AuditRepository interface
type GormAuditRepository struct {
	db *gorm.DB
}

// auditRow GORM model for database mapping
type auditRow struct {
	ID        uint   `gorm:"primaryKey"`
	Operation string `gorm:"column:operation;index"`
	Key       string `gorm:"column:record_key"`
	Outcome   string `gorm:"column:outcome"`
	Detail    string `gorm:"column:detail"`
	CreatedAt time.Time
}

// TableName overrides the default table name
func (auditRow) TableName() string {
	return "audit_entries"
}

// NewGormAuditRepository creates a new GORM audit repository and migrates
// its table.
func NewGormAuditRepository(db *gorm.DB) (repository.AuditRepository, error) {
	if err := db.AutoMigrate(&auditRow{}); err != nil {
		return nil, err
	}
	return &GormAuditRepository{db: db}, nil
}

// Record appends one audit entry.
func (r *GormAuditRepository) Record(ctx context.Context, entry *entity.AuditEntry) error {
	row := auditRow{
		Operation: entry.Operation,
		Key:       entry.Key,
		Outcome:   entry.Outcome,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		return result.Error
	}
	entry.ID = row.ID
	return nil
}
