package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/mappers"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/persistence/models"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/db"
	apperrors "github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"number":     true,
	"status":     true,
	"priority":   true,
	"category":   true,
	"created_at": true,
	"updated_at": true,
}

type MaintenanceRepository struct {
	db     *gorm.DB
	mapper mappers.MaintenanceMapper
}

func NewMaintenanceRepository(database *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{
		db:     database,
		mapper: mappers.NewMaintenanceMapper(),
	}
}

// Save inserts a new ticket. A duplicate ticket number surfaces as the raw
// driver error so callers can detect it with errors.IsDuplicateError and
// regenerate the number.
func (r *MaintenanceRepository) Save(ctx context.Context, t *maintenance.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update persists a mutated ticket guarded by an optimistic version check.
// The domain entity bumps its version on every transition; the row is only
// written when it still holds the version the entity was loaded with. Zero
// rows affected means a concurrent transition won the race.
func (r *MaintenanceRepository) Update(ctx context.Context, t *maintenance.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	loadedVersion := model.Version - 1

	result := tx.
		Model(&models.MaintenanceTicketModel{}).
		Where("id = ? AND version = ?", model.ID, loadedVersion).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError(
			"ticket was modified concurrently",
			fmt.Sprintf("ticket %d version %d is stale", model.ID, loadedVersion),
		)
	}

	return nil
}

// Delete permanently removes a ticket row. The audit trail is removed by the
// caller in the same transaction.
func (r *MaintenanceRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.MaintenanceTicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("ticket %d not found", ticketID))
	}

	return nil
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
	var model models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("ticket %d not found", ticketID))
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MaintenanceRepository) GetByNumber(ctx context.Context, number string) (*maintenance.Ticket, error) {
	var model models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("ticket %s not found", number))
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MaintenanceRepository) List(
	ctx context.Context,
	filter maintenance.TicketFilter,
) ([]*maintenance.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.MaintenanceTicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*maintenance.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *MaintenanceRepository) CountByStatus(
	ctx context.Context,
	filter maintenance.TicketFilter,
) (map[vo.Status]int64, error) {
	rows, err := r.groupCount(ctx, filter, "status", nil, nil)
	if err != nil {
		return nil, err
	}

	counts := make(map[vo.Status]int64, len(rows))
	for _, row := range rows {
		status, err := vo.NewStatus(row.Key)
		if err != nil {
			return nil, err
		}
		counts[status] = row.Count
	}
	return counts, nil
}

func (r *MaintenanceRepository) CountByPriority(
	ctx context.Context,
	filter maintenance.TicketFilter,
) (map[vo.Priority]int64, error) {
	rows, err := r.groupCount(ctx, filter, "priority", nil, nil)
	if err != nil {
		return nil, err
	}

	counts := make(map[vo.Priority]int64, len(rows))
	for _, row := range rows {
		priority, err := vo.NewPriority(row.Key)
		if err != nil {
			return nil, err
		}
		counts[priority] = row.Count
	}
	return counts, nil
}

func (r *MaintenanceRepository) CountByCategory(
	ctx context.Context,
	filter maintenance.TicketFilter,
	from, to time.Time,
) (map[vo.Category]int64, error) {
	rows, err := r.groupCount(ctx, filter, "category", &from, &to)
	if err != nil {
		return nil, err
	}

	counts := make(map[vo.Category]int64, len(rows))
	for _, row := range rows {
		category, err := vo.NewCategory(row.Key)
		if err != nil {
			return nil, err
		}
		counts[category] = row.Count
	}
	return counts, nil
}

type groupCountRow struct {
	Key   string `gorm:"column:group_key"`
	Count int64  `gorm:"column:group_count"`
}

func (r *MaintenanceRepository) groupCount(
	ctx context.Context,
	filter maintenance.TicketFilter,
	column string,
	from, to *time.Time,
) ([]groupCountRow, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx, filter)

	if from != nil {
		query = query.Where("created_at >= ?", from.UnixMilli())
	}
	if to != nil {
		query = query.Where("created_at < ?", to.UnixMilli())
	}

	var rows []groupCountRow
	if err := query.
		Select(column + " AS group_key, COUNT(*) AS group_count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by %s: %w", column, err)
	}

	return rows, nil
}

// applyFilter translates the shared filter predicate into a query, so the
// list view and every aggregate count always agree on which tickets are in
// scope.
func (r *MaintenanceRepository) applyFilter(tx *gorm.DB, filter maintenance.TicketFilter) *gorm.DB {
	query := tx.Model(&models.MaintenanceTicketModel{})

	if filter.CommunityID != nil {
		query = query.Where("community_id = ?", *filter.CommunityID)
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		unitMatch := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.PropertyModel{}).
			Select("id").
			Where("room_number LIKE ? OR building LIKE ?", like, like)
		query = query.Where(
			"number LIKE ? OR reporter LIKE ? OR property_id IN (?)",
			like, like, unitMatch,
		)
	}

	return query
}
