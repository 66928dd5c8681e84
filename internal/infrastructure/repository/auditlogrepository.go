package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/mappers"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/models"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/db"
)

// AuditLogRepository persists the append-only transition history. Entries
// are written once, inside the same transaction as the ticket mutation they
// describe, and are never updated. They are deleted only together with their
// ticket.
type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.MaintenanceMapper
}

func NewAuditLogRepository(database *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     database,
		mapper: mappers.NewMaintenanceMapper(),
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *maintenance.AuditEntry) error {
	model := r.mapper.LogToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return entry.SetID(model.ID)
}

// DeleteByTicketID removes a ticket's whole trail. Deleting a trail that has
// no entries is not an error.
func (r *AuditLogRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.MaintenanceLogModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete audit entries: %w", err)
	}

	return nil
}

// ListByTicketID returns entries in creation order. Ordering is by primary
// key, not timestamp, so two entries written in the same millisecond still
// come back in append order.
func (r *AuditLogRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*maintenance.AuditEntry, error) {
	var logModels []models.MaintenanceLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*maintenance.AuditEntry, len(logModels))
	for i, model := range logModels {
		entry, err := r.mapper.LogToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}
