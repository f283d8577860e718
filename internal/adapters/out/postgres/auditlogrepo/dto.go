// Package auditlogrepo provides data transfer objects and mapping functions
// for the append-only audit trail. Rows are only ever inserted; the trail is
// the immutable transition history of every order.
package auditlogrepo

import (
	"time"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditLogDTO represents the database structure for persisting audit entries.
// Indexed by order so a single order's timeline reads without a scan.
type AuditLogDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	OldStatus string
	NewStatus string
	ChangedBy string
	Reason    string
	CreatedAt time.Time
}

// TableName specifies the database table name for audit entries.
func (AuditLogDTO) TableName() string {
	return "audit_logs"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *audit.Entry) AuditLogDTO {
	return AuditLogDTO{
		ID:        entry.ID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		OldStatus: entry.OldStatus(),
		NewStatus: entry.NewStatus(),
		ChangedBy: entry.ChangedBy(),
		Reason:    entry.Reason(),
		CreatedAt: entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to an audit entry using RestoreEntry.
func toDomain(dto AuditLogDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(
		id,
		orderID,
		dto.OldStatus,
		dto.NewStatus,
		dto.ChangedBy,
		dto.Reason,
		dto.CreatedAt,
	)
}
